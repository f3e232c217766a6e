package cli

import "github.com/charmbracelet/lipgloss"

// Output styles. Lipgloss degrades to plain text when stdout is not a
// terminal, so piped output stays clean.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#A6E3A1")) // Green

	answerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CDD6F4")) // Light gray

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7086")) // Medium gray

	scoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#06B6D4")) // Cyan

	promptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F9E2AF")) // Yellow
)
