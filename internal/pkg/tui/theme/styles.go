package theme

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Styles contains the styles used by terminal output
type Styles struct {
	// Text styles
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Muted    lipgloss.Style

	// Layout
	Card lipgloss.Style

	// Bars
	BarActive   lipgloss.Style
	BarInactive lipgloss.Style

	// Outcomes
	Success lipgloss.Style
	Failure lipgloss.Style
}

var (
	defaultStyles *Styles
	once          sync.Once
)

// Default returns the singleton default Styles instance
func Default() *Styles {
	once.Do(func() {
		defaultStyles = newStyles()
	})
	return defaultStyles
}

func newStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(Brown).
			MarginBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true),

		Label: lipgloss.NewStyle().
			Foreground(LightGray).
			Width(16),

		Value: lipgloss.NewStyle().
			Bold(true),

		Muted: lipgloss.NewStyle().
			Foreground(DimGray),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DarkGray).
			Padding(0, 1),

		BarActive: lipgloss.NewStyle().
			Foreground(Blue),

		BarInactive: lipgloss.NewStyle().
			Foreground(DarkGray),

		Success: lipgloss.NewStyle().
			Foreground(Success),

		Failure: lipgloss.NewStyle().
			Foreground(Failure),
	}
}

// ForOutcome returns the style for an outcome label.
func (s *Styles) ForOutcome(label string) lipgloss.Style {
	switch label {
	case "Success":
		return s.Success
	case "Failure":
		return s.Failure
	}
	return s.Value
}
