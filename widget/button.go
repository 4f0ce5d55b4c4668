package widget

import (
	"github.com/swatch-cli/swatch/shade"
	"github.com/swatch-cli/swatch/theme"
)

// Variant is the shape/role of a button-like control.
type Variant string

// The closed set of recognized button variants.
const (
	VariantPrimary   Variant = "primary"
	VariantSecondary Variant = "secondary"
	VariantGhost     Variant = "ghost"
	VariantDanger    Variant = "danger"
)

// AllVariants returns the closed enumeration of recognized button variants.
func AllVariants() []Variant {
	return []Variant{VariantPrimary, VariantSecondary, VariantGhost, VariantDanger}
}

// ParseVariant maps a string onto the closed variant set; unrecognized values
// fall through to primary.
func ParseVariant(s string) Variant {
	switch Variant(s) {
	case VariantSecondary, VariantGhost, VariantDanger:
		return Variant(s)
	default:
		return VariantPrimary
	}
}

// Size selects a fixed metrics record, independent of variant.
type Size string

// The closed set of recognized control sizes.
const (
	SizeSmall  Size = "sm"
	SizeMedium Size = "md"
	SizeLarge  Size = "lg"
)

// AllSizes returns the closed enumeration of recognized button sizes.
func AllSizes() []Size {
	return []Size{SizeSmall, SizeMedium, SizeLarge}
}

// ParseSize maps a string onto the closed size set; unrecognized values fall
// through to medium.
func ParseSize(s string) Size {
	switch Size(s) {
	case SizeSmall, SizeLarge:
		return Size(s)
	default:
		return SizeMedium
	}
}

// buttonMetrics is the fixed per-size sizing table for buttons.
var buttonMetrics = map[Size]Metrics{
	SizeSmall:  {Height: 36, PaddingHorizontal: 8, Radius: 8, TextSize: 14},
	SizeMedium: {Height: 44, PaddingHorizontal: 16, Radius: 12, TextSize: 16},
	SizeLarge:  {Height: 52, PaddingHorizontal: 20, Radius: 14, TextSize: 17},
}

// buttonTextWeight is the label weight shared by every button variant.
const buttonTextWeight = "600"

// ButtonOptions enumerates every recognized button option with its default:
// primary variant, medium size, enabled.
type ButtonOptions struct {
	Variant  Variant `json:"variant"`
	Size     Size    `json:"size"`
	Disabled bool    `json:"disabled"`
}

// normalize folds unknown enumeration members onto the defaults.
func (o ButtonOptions) normalize() ButtonOptions {
	o.Variant = ParseVariant(string(o.Variant))
	o.Size = ParseSize(string(o.Size))
	return o
}

// ResolveButton derives the concrete style descriptor for a button from a
// palette and role options. The disabled look is produced entirely by muting
// each opaque color toward the palette background; no alpha overlay is used,
// so disabled buttons stay fully legible at full opacity.
func ResolveButton(p theme.Palette, options ButtonOptions) StyleDescriptor {
	options = options.normalize()
	metrics := buttonMetrics[options.Size]

	roles := buttonRoles(p, options.Variant)
	if options.Disabled {
		roles = shade.Disabled(roles, p.Background)
	}

	container := ContainerStyle{
		Height:            metrics.Height,
		PaddingHorizontal: metrics.PaddingHorizontal,
		Radius:            metrics.Radius,
		Background:        roles.Background,
	}

	// Only the secondary variant carries a visible container border.
	if options.Variant == VariantSecondary {
		container.BorderWidth = 1
		container.BorderColor = roles.Border
	}

	return StyleDescriptor{
		Container: container,
		Text: TextStyle{
			Size:   metrics.TextSize,
			Weight: buttonTextWeight,
			Color:  roles.Text,
		},
	}
}

// buttonRoles maps a variant onto its enabled background/border/text triple.
func buttonRoles(p theme.Palette, variant Variant) shade.Roles {
	switch variant {
	case VariantSecondary:
		return shade.Roles{Background: p.Card, Border: p.Border, Text: p.TextPrimary}
	case VariantGhost:
		return shade.Roles{Background: shade.Transparent, Text: p.TintPrimary}
	case VariantDanger:
		return shade.Roles{Background: p.Negative, Text: "#FFFFFF"}
	default:
		return shade.Roles{Background: p.TintPrimary, Text: "#FFFFFF"}
	}
}
