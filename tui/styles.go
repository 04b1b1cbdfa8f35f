package tui

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	colorAccent  = lipgloss.Color("#5FD7A7")
	colorLightFg = lipgloss.Color("#E1E8ED")
	colorMuted   = lipgloss.Color("#657786")
	colorDark    = lipgloss.Color("#15202B")
)

// Styles
var (
	headerStyle = lipgloss.NewStyle().
			Background(colorAccent).
			Foreground(colorDark).
			Bold(true).
			Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	filterPromptStyle = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true)

	tableHeaderStyle = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(colorMuted).
				BorderBottom(true)

	tableSelectedStyle = lipgloss.NewStyle().
				Foreground(colorDark).
				Background(colorAccent).
				Bold(true)

	tableCellStyle = lipgloss.NewStyle().
			Foreground(colorLightFg)
)
