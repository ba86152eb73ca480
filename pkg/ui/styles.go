package ui

import "github.com/charmbracelet/lipgloss"

// Color palette for the demo dashboard.
var (
	ColorBg        = lipgloss.Color("#282A36")
	ColorText      = lipgloss.Color("#F8F8F2")
	ColorMuted     = lipgloss.Color("#6272A4")
	ColorPrimary   = lipgloss.Color("#BD93F9")
	ColorInfo      = lipgloss.Color("#8BE9FD")
	ColorSuccess   = lipgloss.Color("#50FA7B")
	ColorWarning   = lipgloss.Color("#FFB86C")
	ColorDanger    = lipgloss.Color("#FF5555")
	ColorHighlight = lipgloss.Color("#44475A")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	labelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)

	sidebarStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorBg).
			Background(ColorPrimary).
			Padding(0, 2)

	tabStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Background(ColorHighlight).
			Padding(0, 2)

	transitionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWarning)

	helpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// tierColor maps a tier name to its accent color.
func tierColor(tier string) lipgloss.Color {
	switch tier {
	case "high":
		return ColorSuccess
	case "low":
		return ColorDanger
	default:
		return ColorWarning
	}
}
