// Package color implements the primitive color algebra used for style derivation.
//
// Colors travel through the application as strings in one of two canonical
// notations: 6-digit hex ("#rrggbb") or functional "rgba(r, g, b, a)".
// Parsing failures are represented as absent values, never as errors, so the
// render path can always fall back to something visually reasonable.
package color

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/mo"
	"github.com/swatch-cli/swatch/util"
)

// RGBA is a transient parsed color value with integer channels in [0, 255]
// and an alpha component in [0, 1]. It is created inside algebra calls and
// never retained.
type RGBA struct {
	R, G, B int
	A       float64
}

// Hex renders the color in canonical 6-digit hex notation, discarding alpha.
func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String renders the color in functional rgba notation.
func (c RGBA) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, formatAlpha(c.A))
}

// WithAlpha returns a copy of the color with its alpha component replaced.
// The alpha argument is clamped to [0, 1].
func (c RGBA) WithAlpha(alpha float64) RGBA {
	c.A = util.Clamp(alpha, 0, 1)
	return c
}

// formatAlpha renders an alpha component with the minimal number of digits.
func formatAlpha(a float64) string {
	return strconv.FormatFloat(a, 'g', -1, 64)
}

// Parse interprets a color string in hex ("#rgb" or "#rrggbb", case-insensitive,
// leading '#' optional) or functional ("rgb(r, g, b)" / "rgba(r, g, b, a)")
// notation. Any other input yields None; callers decide the fallback.
func Parse(s string) mo.Option[RGBA] {
	s = strings.TrimSpace(s)

	if c, ok := parseHex(s); ok {
		return mo.Some(c)
	}

	if c, ok := parseFunctional(s); ok {
		return mo.Some(c)
	}

	return mo.None[RGBA]()
}

// parseHex interprets 3- and 6-digit hex notation.
// 3-digit shorthand is expanded by digit duplication ("#abc" -> "#aabbcc").
func parseHex(s string) (RGBA, bool) {
	s = strings.TrimPrefix(s, "#")

	switch len(s) {
	case 3:
		var expanded strings.Builder
		for _, r := range s {
			expanded.WriteRune(r)
			expanded.WriteRune(r)
		}
		s = expanded.String()
	case 6:
	default:
		return RGBA{}, false
	}

	channels := make([]int, 3)
	for i := range channels {
		value, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGBA{}, false
		}
		channels[i] = int(value)
	}

	return RGBA{R: channels[0], G: channels[1], B: channels[2], A: 1}, true
}

// parseFunctional interprets "rgb(r, g, b)" and "rgba(r, g, b, a)" notation
// with integer channels in [0, 255] and alpha in [0, 1].
func parseFunctional(s string) (RGBA, bool) {
	lower := strings.ToLower(s)

	var body string
	switch {
	case strings.HasPrefix(lower, "rgba(") && strings.HasSuffix(lower, ")"):
		body = lower[len("rgba(") : len(lower)-1]
	case strings.HasPrefix(lower, "rgb(") && strings.HasSuffix(lower, ")"):
		body = lower[len("rgb(") : len(lower)-1]
	default:
		return RGBA{}, false
	}

	parts := strings.Split(body, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return RGBA{}, false
	}

	channels := make([]int, 3)
	for i := range channels {
		value, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || value < 0 || value > 255 {
			return RGBA{}, false
		}
		channels[i] = value
	}

	alpha := 1.0
	if len(parts) == 4 {
		value, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil {
			return RGBA{}, false
		}
		alpha = util.Clamp(value, 0, 1)
	}

	return RGBA{R: channels[0], G: channels[1], B: channels[2], A: alpha}, true
}

// WithAlpha re-emits a color string with the given alpha component.
// Hex input is converted to rgba notation; rgb/rgba input has its alpha
// replaced. The alpha argument is clamped to [0, 1] regardless of input range.
// Unparsable input is returned unchanged.
func WithAlpha(s string, alpha float64) string {
	parsed, ok := Parse(s).Get()
	if !ok {
		return s
	}

	return parsed.WithAlpha(alpha).String()
}

// Relative luminance channel weights (ITU-R BT.709).
const (
	weightRed   = 0.2126
	weightGreen = 0.7152
	weightBlue  = 0.0722
)

// RelativeLuminance estimates the perceived brightness of a color in [0, 1].
// It is defined only for 6-digit hex input; every other notation (including
// 3-digit shorthand and rgba) yields None.
func RelativeLuminance(s string) mo.Option[float64] {
	trimmed := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(trimmed) != 6 {
		return mo.None[float64]()
	}

	c, ok := parseHex(trimmed)
	if !ok {
		return mo.None[float64]()
	}

	lum := weightRed*float64(c.R)/255 +
		weightGreen*float64(c.G)/255 +
		weightBlue*float64(c.B)/255

	return mo.Some(lum)
}

// Default text candidates for readable-contrast selection.
const (
	DefaultLightText = "#FFFFFF"
	DefaultDarkText  = "#0B1220"
)

// ChooseReadableText picks a readable text color for the given background.
// Backgrounds brighter than 0.5 relative luminance get the dark candidate;
// everything else, including a luminance of exactly 0.5 and any background
// that is not a parseable 6-digit hex, gets the light candidate.
func ChooseReadableText(background string, candidates ...string) string {
	light, dark := DefaultLightText, DefaultDarkText
	if len(candidates) > 0 && candidates[0] != "" {
		light = candidates[0]
	}
	if len(candidates) > 1 && candidates[1] != "" {
		dark = candidates[1]
	}

	lum, ok := RelativeLuminance(background).Get()
	if !ok {
		return light
	}

	if lum > 0.5 {
		return dark
	}
	return light
}
