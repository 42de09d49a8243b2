package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Title styling
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4"))

	// Prompt styling for the working directory
	PromptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#04B575"))

	// Directory marker styling
	DirStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")).
			Bold(true)

	// Error styling
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	// Help text styling
	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	// Subtle text styling
	SubtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// DisableColors strips all styling, for FSX_NO_COLOR and dumb terminals.
func DisableColors() {
	TitleStyle = lipgloss.NewStyle()
	PromptStyle = lipgloss.NewStyle()
	DirStyle = lipgloss.NewStyle()
	ErrorStyle = lipgloss.NewStyle()
	HelpStyle = lipgloss.NewStyle()
	SubtleStyle = lipgloss.NewStyle()
}
