package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Main application frame
	appStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#5F6368")).
			Padding(0, 1)

	// Pane titles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#D1D1D1")).
			Background(lipgloss.Color("#3C4043")).
			Padding(0, 1)

	// Title of the pane that has focus
	activeTitleStyle = titleStyle.
				Background(lipgloss.Color("#5F6368"))

	// Status line for info messages
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#959595"))

	// Error messages
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5555"))

	// Cursor row highlight
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#5F6368"))

	// Plain list rows
	unselectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CCCCCC"))

	// Info block under the id list
	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#D1D1D1")).
			PaddingLeft(1)

	paneStyle = lipgloss.NewStyle().
			PaddingRight(2)
)
