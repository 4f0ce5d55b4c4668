// Package style provides a functional API for composing and applying lipgloss-based TUI styles.
package style

import (
	"github.com/charmbracelet/lipgloss"
	appcolor "github.com/swatch-cli/swatch/color"
	"github.com/swatch-cli/swatch/shade"
	"github.com/swatch-cli/swatch/widget"
)

// Terminal renders a style descriptor as a terminal swatch. Pixel metrics do
// not translate to character cells, so sizing is approximated: horizontal
// padding scales down to cells and the border toggles on border width.
func Terminal(d widget.StyleDescriptor, label string) string {
	s := New().
		Foreground(TerminalColor(d.Text.Color)).
		Background(TerminalColor(d.Container.Background)).
		Padding(0, cells(d.Container.PaddingHorizontal))

	if d.Container.BorderWidth > 0 {
		s = s.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(TerminalColor(d.Container.BorderColor))
	}

	return s.Render(label)
}

// TerminalBadge renders badge visuals as a compact bordered tag.
func TerminalBadge(v widget.BadgeVisuals, label string) string {
	return New().
		Foreground(TerminalColor(v.Text)).
		Background(TerminalColor(v.Background)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(TerminalColor(v.Border)).
		Padding(0, 1).
		Render(label)
}

// TerminalColor converts an engine color string to a lipgloss color.
// Terminals have no alpha channel, so translucent colors are flattened to
// their opaque hex; transparent and unparsable values map to no color at all.
func TerminalColor(c string) lipgloss.TerminalColor {
	if c == shade.Transparent {
		return lipgloss.NoColor{}
	}

	parsed, ok := appcolor.Parse(c).Get()
	if !ok {
		return lipgloss.NoColor{}
	}

	return lipgloss.Color(parsed.Hex())
}

// cells converts a pixel dimension to an approximate character-cell count.
func cells(px int) int {
	if px <= 0 {
		return 0
	}

	cells := px / 8
	if cells < 1 {
		cells = 1
	}
	return cells
}
