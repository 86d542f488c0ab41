package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/ui"
)

var (
	colorCyan   = lipgloss.Color("36")
	colorYellow = lipgloss.Color("220")
	colorBlue   = lipgloss.Color("75")
	colorDim    = lipgloss.Color("240")

	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleWarn  = lipgloss.NewStyle().Foreground(colorYellow)
	styleRect  = lipgloss.NewStyle().Bold(true).Foreground(colorBlue)
	styleGlyph = lipgloss.NewStyle().Foreground(colorCyan)
	styleDim   = lipgloss.NewStyle().Foreground(colorDim)
)

// swatch renders a color's hex value on a background of that color.
func swatch(c ui.Color) string {
	hex := c.Hex()
	fg := lipgloss.Color("0")
	if r, g, b := c.R, c.G, c.B; 0.299*r+0.587*g+0.114*b < 0.5 {
		fg = lipgloss.Color("15")
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex[:7])).
		Foreground(fg).
		Render(hex)
}
