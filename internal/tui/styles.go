package tui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("205")
	dimTextColor = lipgloss.Color("241")
	errorColor   = lipgloss.Color("196")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(dimTextColor)

	tagNameStyle = lipgloss.NewStyle().
			Foreground(primaryColor)

	tagValueStyle = lipgloss.NewStyle()

	spinnerStyle = lipgloss.NewStyle().
			Foreground(primaryColor)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(errorColor)

	helpStyle = lipgloss.NewStyle().
			Foreground(dimTextColor)
)
