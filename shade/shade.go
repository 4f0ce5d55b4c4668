// Package shade derives reduced- and raised-emphasis variants of base colors.
//
// Muted variants serve disabled and inactive presentation; vibrant variants
// serve solid selected fills. Both are deterministic transforms with fixed
// constants, so identical inputs always yield identical output strings.
package shade

import (
	"math"

	"github.com/swatch-cli/swatch/color"
)

// Transform constants.
//
// mutedBlend is the interpolation weight toward the background; a per-channel
// linear mix keeps the result's relative luminance strictly between the two
// inputs' luminances whenever they differ.
//
// vibrantSaturation and vibrantLightStep raise emphasis in HSL space; the
// lightness floor and ceiling keep the result away from pure black and white.
const (
	mutedBlend = 0.45

	vibrantSaturation = 1.25
	vibrantLightStep  = 0.12
	vibrantLightFloor = 0.08
	vibrantLightCeil  = 0.92
)

// Muted produces a lower-emphasis version of base for disabled and inactive
// presentation by partially interpolating it toward the background color.
// Unparsable input degrades to the base string unchanged.
func Muted(base, background string) string {
	from, ok := color.Parse(base).Get()
	if !ok {
		return base
	}

	to, ok := color.Parse(background).Get()
	if !ok {
		return base
	}

	return color.RGBA{
		R: mix(from.R, to.R),
		G: mix(from.G, to.G),
		B: mix(from.B, to.B),
		A: 1,
	}.Hex()
}

// mix interpolates a single channel toward its background counterpart.
func mix(from, to int) int {
	return int(math.Round(float64(from) + (float64(to)-float64(from))*mutedBlend))
}

// Vibrant produces a higher-emphasis, solid-fill-worthy version of base for
// selected presentation: saturation is boosted and lightness is pushed away
// from the mid point, so the result stays on a definite light or dark side
// for readable-text selection. Unparsable input is returned unchanged.
func Vibrant(base string) string {
	parsed, ok := color.Parse(base).Get()
	if !ok {
		return base
	}

	h, s, l := parsed.HSL()

	s = math.Min(1, s*vibrantSaturation)

	if l >= 0.5 {
		l = math.Min(vibrantLightCeil, l+vibrantLightStep)
	} else {
		l = math.Max(vibrantLightFloor, l-vibrantLightStep)
	}

	return color.FromHSL(h, s, l).Hex()
}

// Transparent is the sentinel background value for fill-less containers.
// It is never muted; ghost surfaces stay transparent when disabled.
const Transparent = "transparent"

// Roles groups the three colors of a widget surface that mute together.
type Roles struct {
	Background string
	Border     string
	Text       string
}

// Disabled mutes every non-transparent role color against the palette
// background, producing the washed-out triple used for disabled controls.
// No alpha overlay is involved; emphasis reduction is entirely chromatic.
func Disabled(roles Roles, background string) Roles {
	muteRole := func(c string) string {
		if c == "" || c == Transparent {
			return c
		}
		return Muted(c, background)
	}

	return Roles{
		Background: muteRole(roles.Background),
		Border:     muteRole(roles.Border),
		Text:       muteRole(roles.Text),
	}
}
