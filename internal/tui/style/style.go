// Package style defines lipgloss styles for the demo TUI.
package style

import "github.com/charmbracelet/lipgloss"

// UI styles using lipgloss.
// These are package-level for convenience; lipgloss styles are value types
// and safe for concurrent use.
//
// Variable names intentionally omit "Style" suffix since they're accessed
// via the style package (e.g., style.Title reads better than style.TitleStyle).
var (
	// Title is used for the demo header.
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205"))

	// Accent is the true-color base for the main shimmer line and the
	// spinner.
	Accent = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#00ffff"))

	// Label is used for inline labels in front of the shimmer lines.
	Label = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	// Help is used for keyboard shortcut hints.
	Help = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
)
