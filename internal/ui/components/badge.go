package components

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Badge renders a compact bracketed label in the given color.
func Badge(label string, c color.Color) string {
	return lipgloss.NewStyle().
		Foreground(c).
		Bold(true).
		Render("[" + label + "]")
}
