// Package style holds the lipgloss styles used for wsinit's CLI output.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette
var (
	SuccessColor = lipgloss.AdaptiveColor{Light: "#2e7d32", Dark: "#81c784"}
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#c62828", Dark: "#e57373"}
	MutedColor   = lipgloss.AdaptiveColor{Light: "#757575", Dark: "#9e9e9e"}
)

// Status styles
var (
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)
)
