package components

import (
	"strings"

	"github.com/emiliopalmerini/launchdash/internal/pkg/tui/theme"
)

// Bar shows a value's share of a total as a fixed-width bar
type Bar struct {
	Value  int
	Total  int
	Width  int
	styles *theme.Styles
}

// NewBar creates a new bar of the given width
func NewBar(value, total, width int) Bar {
	return Bar{
		Value:  value,
		Total:  total,
		Width:  width,
		styles: theme.Default(),
	}
}

// Filled returns the number of filled cells.
func (b Bar) Filled() int {
	if b.Total <= 0 || b.Width <= 0 || b.Value <= 0 {
		return 0
	}
	n := (b.Value*b.Width + b.Total/2) / b.Total
	if n == 0 {
		n = 1 // any non-zero share is visible
	}
	if n > b.Width {
		n = b.Width
	}
	return n
}

// View renders the bar
func (b Bar) View() string {
	filled := b.Filled()
	var sb strings.Builder
	sb.WriteString(b.styles.BarActive.Render(strings.Repeat("#", filled)))
	sb.WriteString(b.styles.BarInactive.Render(strings.Repeat(".", max(b.Width-filled, 0))))
	return sb.String()
}
