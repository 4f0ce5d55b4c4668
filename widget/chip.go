package widget

import (
	"github.com/swatch-cli/swatch/color"
	"github.com/swatch-cli/swatch/shade"
	"github.com/swatch-cli/swatch/theme"
)

// chipMetrics is the fixed per-size sizing table for chips. Chips recognize
// only the small and medium sizes; anything else takes the medium record.
var chipMetrics = map[Size]Metrics{
	SizeSmall:  {Height: 28, PaddingHorizontal: 8, Radius: 8, TextSize: 12},
	SizeMedium: {Height: 32, PaddingHorizontal: 12, Radius: 16, TextSize: 13},
}

// Alpha levels for soft tone fills and touch feedback.
const (
	softFillAlpha    = 0.12
	rippleAlpha      = 0.12
	badgeFillAlpha   = 0.10
	badgeBorderAlpha = 0.20
)

// chipTextWeight is the label weight shared by every chip tone.
const chipTextWeight = "500"

// ChipOptions enumerates every recognized chip option with its default:
// neutral tone, medium size, unselected.
type ChipOptions struct {
	Tone     theme.Tone `json:"tone"`
	Size     Size       `json:"size"`
	Selected bool       `json:"selected"`
}

// normalize folds unknown enumeration members onto the defaults.
func (o ChipOptions) normalize() ChipOptions {
	o.Tone = theme.ParseTone(string(o.Tone))
	if o.Size != SizeSmall {
		o.Size = SizeMedium
	}
	return o
}

// ResolveChip derives the concrete style descriptor for a chip from a palette
// and role options. Unselected chips get a resting surface per tone; selected
// chips get a solid vibrant fill with contrast-derived text.
func ResolveChip(p theme.Palette, options ChipOptions) StyleDescriptor {
	options = options.normalize()
	metrics := chipMetrics[options.Size]

	roles := chipRoles(p, options.Tone, options.Selected)

	return StyleDescriptor{
		Container: ContainerStyle{
			Height:            metrics.Height,
			PaddingHorizontal: metrics.PaddingHorizontal,
			Radius:            metrics.Radius,
			Background:        roles.Background,
			BorderWidth:       1,
			BorderColor:       roles.Border,
		},
		Text: TextStyle{
			Size:   metrics.TextSize,
			Weight: chipTextWeight,
			Color:  roles.Text,
		},
	}
}

// chipRoles resolves the per-tone surface triple for the selected or resting
// presentation.
func chipRoles(p theme.Palette, tone theme.Tone, selected bool) shade.Roles {
	if selected {
		// Solid fill: neutral raises the secondary text color, every other
		// tone raises its semantic base color.
		base := theme.BaseColor(p, tone)
		if tone == theme.ToneNeutral {
			base = p.TextSecondary
		}

		fill := shade.Vibrant(base)
		return shade.Roles{
			Background: fill,
			Border:     fill,
			Text:       color.ChooseReadableText(fill),
		}
	}

	switch tone {
	case theme.ToneAccent:
		return shade.Roles{
			Background: p.TintSoftBg,
			Border:     p.Border,
			Text:       shade.Muted(p.TintPrimary, p.Background),
		}
	case theme.ToneSuccess, theme.ToneWarning, theme.ToneDanger:
		base := theme.BaseColor(p, tone)
		return shade.Roles{
			Background: color.WithAlpha(base, softFillAlpha),
			Border:     p.Border,
			Text:       shade.Muted(base, p.Background),
		}
	default:
		return shade.Roles{
			Background: p.Card,
			Border:     p.Border,
			Text:       shade.Muted(p.TextSecondary, p.Background),
		}
	}
}

// Ripple resolves the touch-feedback tint for a tone. It is independent of
// selection so the feedback stays consistent across state changes.
func Ripple(p theme.Palette, tone theme.Tone) string {
	return color.WithAlpha(theme.BaseColor(p, theme.ParseTone(string(tone))), rippleAlpha)
}

// BadgeOptions enumerates every recognized badge option with its default:
// neutral tone, unselected.
type BadgeOptions struct {
	Tone     theme.Tone `json:"tone"`
	Selected bool       `json:"selected"`
}

// Badge derives the surface colors for a non-sized badge or indicator
// element. Selected badges fill solid with the tone's base color; resting
// badges wear translucent derivatives of the same hue.
func Badge(p theme.Palette, options BadgeOptions) BadgeVisuals {
	tone := theme.ParseTone(string(options.Tone))
	base := theme.BaseColor(p, tone)
	ripple := color.WithAlpha(base, rippleAlpha)

	if options.Selected {
		return BadgeVisuals{
			Background: base,
			Border:     base,
			Text:       "#FFFFFF",
			Ripple:     ripple,
		}
	}

	return BadgeVisuals{
		Background: color.WithAlpha(base, badgeFillAlpha),
		Border:     color.WithAlpha(base, badgeBorderAlpha),
		Text:       base,
		Ripple:     ripple,
	}
}
