package tui

import "github.com/charmbracelet/lipgloss"

// Shared color palette.
var (
	ColorGreen   = lipgloss.Color("#06D6A0")
	ColorYellow  = lipgloss.Color("#FFD166")
	ColorBlue    = lipgloss.Color("#118AB2")
	ColorDark    = lipgloss.Color("#073B4C")
	ColorWeekend = lipgloss.Color("#969696")
	ColorRed     = lipgloss.Color("#EF476F")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorDark).
			Background(ColorGreen).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorBlue)

	todayStyle = lipgloss.NewStyle().
			Foreground(ColorGreen).
			Bold(true)

	weekendStyle = lipgloss.NewStyle().
			Foreground(ColorWeekend)

	selectedStyle = lipgloss.NewStyle().
			Reverse(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(ColorWeekend)

	dirtyStyle = lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true)

	editStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)
)
