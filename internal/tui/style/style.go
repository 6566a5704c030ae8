// Package style defines lipgloss styles for the TUI.
package style

import "github.com/charmbracelet/lipgloss"

// UI styles using lipgloss.
// These are package-level for convenience; lipgloss styles are value types
// and safe for concurrent use.
//
// Variable names intentionally omit "Style" suffix since they're accessed
// via the style package (e.g., style.Title reads better than style.TitleStyle).
var (
	// Title is used for the application header.
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205"))

	// Element is used for a host element without focus.
	Element = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("241")).
		Padding(0, 1)

	// ElementFocused is used for the host element holding keyboard focus.
	ElementFocused = Element.
			BorderForeground(lipgloss.Color("62"))

	// Help is used for keyboard shortcut hints.
	Help = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	// Progress is used for the value gauge.
	Progress = lipgloss.NewStyle().
			Foreground(lipgloss.Color("63"))

	// Muted is used for de-emphasized text (e.g., the change counter or an empty gauge).
	Muted = lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))
)
