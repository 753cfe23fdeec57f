package theme

import "github.com/charmbracelet/lipgloss"

// Color palette shared with the web charts
var (
	// Primary colors
	Blue     = lipgloss.Color("#636EFA")
	DarkBlue = lipgloss.Color("#3B4BC8")
	Brown    = lipgloss.Color("#503D36")

	// Neutrals
	White     = lipgloss.Color("#FFFFFF")
	LightGray = lipgloss.Color("#9CA3AF")
	DimGray   = lipgloss.Color("#6B7280")
	DarkGray  = lipgloss.Color("#374151")

	// Outcome colors
	Success = lipgloss.Color("#00CC96")
	Failure = lipgloss.Color("#EF553B")
)
