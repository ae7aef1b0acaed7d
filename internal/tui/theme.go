package tui

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	colorText     = "#cdd6f4"
	colorBase     = "#1e1e2e"
	colorSubtext0 = "#a6adc8"
	colorMauve    = "#cba6f7"
	colorRed      = "#f38ba8"
	colorPeach    = "#fab387"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorMauve))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorSubtext0))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(colorRed))
	markerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorPeach))
	slideStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colorSubtext0)).
			Padding(1, 2)
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

var (
	textColour = mustHex(colorText)
	baseColour = mustHex(colorBase)
)

// Blend returns fg faded toward bg; opacity 1 is fg, 0 is bg.
func Blend(fg, bg colorful.Color, opacity float64) colorful.Color {
	if opacity <= 0 {
		return bg
	}
	if opacity >= 1 {
		return fg
	}
	return bg.BlendLab(fg, opacity).Clamped()
}
