package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	ColorPrimary   = lipgloss.Color("205") // Pink
	ColorSecondary = lipgloss.Color("241") // Gray
	ColorSuccess   = lipgloss.Color("42")  // Green
	ColorError     = lipgloss.Color("160") // Red
	ColorWarning   = lipgloss.Color("214") // Orange/Yellow
	ColorText      = lipgloss.Color("252") // White/Gray
	ColorCyan      = lipgloss.Color("87")  // Cyan for the active filter

	// Base Styles
	StyleTitle   = lipgloss.NewStyle().Foreground(ColorText).Bold(true)
	StyleSubtle  = lipgloss.NewStyle().Foreground(ColorSecondary)
	StylePrimary = lipgloss.NewStyle().Foreground(ColorPrimary)
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleText    = lipgloss.NewStyle().Foreground(ColorText)

	// Input box for add/search/edit prompts
	StyleInputBox = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorSecondary).
			Padding(0, 1)

	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true).
			Padding(0, 1)

	// Task rows
	StyleTaskDone     = lipgloss.NewStyle().Foreground(ColorSecondary).Strikethrough(true)
	StyleTaskActive   = lipgloss.NewStyle().Foreground(ColorText)
	StyleTaskSelected = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	StyleCheckDone    = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleCheckOpen    = lipgloss.NewStyle().Foreground(ColorSecondary)
	StyleDate         = lipgloss.NewStyle().Foreground(ColorSecondary)

	// Filter tabs
	StyleFilterOn  = lipgloss.NewStyle().Foreground(ColorCyan).Bold(true).Underline(true)
	StyleFilterOff = lipgloss.NewStyle().Foreground(ColorSecondary)
)

// Icon returns a styled icon string
func Icon(icon string, style lipgloss.Style) string {
	return style.Render(icon)
}

// Checkbox returns the styled completion marker for a row.
func Checkbox(checked bool) string {
	if checked {
		return Icon("[x]", StyleCheckDone)
	}
	return Icon("[ ]", StyleCheckOpen)
}
