package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	colorHeader = lipgloss.Color("12") // bright blue
	colorMuted  = lipgloss.Color("8")  // dim
	colorError  = lipgloss.Color("1")  // red
	colorFrame  = lipgloss.Color("2")  // green
	colorCursor = lipgloss.Color("6")  // cyan

	// Styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorHeader)

	subheaderStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	positionStyle = lipgloss.NewStyle().
			Foreground(colorCursor).
			Bold(true)

	frameStyle = lipgloss.NewStyle().
			Foreground(colorFrame)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)
