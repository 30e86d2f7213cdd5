package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	SuccessColor = lipgloss.Color("42")
	ErrorColor   = lipgloss.Color("196")
	HeadingColor = lipgloss.Color("63")
	MutedColor   = lipgloss.Color("241")
	PathColor    = lipgloss.Color("39")
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	PathStyle = lipgloss.NewStyle().
			Foreground(PathColor).
			Italic(true)

	ListItemStyle = lipgloss.NewStyle().
			PaddingLeft(2)
)
