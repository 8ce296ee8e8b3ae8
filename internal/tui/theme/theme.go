// Package theme holds the shared lipgloss styles for the gcsel TUIs.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme groups the styles used across the picker and directory prompt.
type Theme struct {
	Header    lipgloss.Style
	Info      lipgloss.Style
	Highlight lipgloss.Style
	Selected  lipgloss.Style
	Checked   lipgloss.Style
	Label     lipgloss.Style
	Muted     lipgloss.Style
	Error     lipgloss.Style
}

// Default is the theme used by every gcsel TUI.
var Default = Theme{
	Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
	Info:      lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	Selected:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
	Checked:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	Label:     lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	Muted:     lipgloss.NewStyle().Faint(true),
	Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
}
