package color

import "math"

// HSL decomposes the color into hue [0, 360), saturation [0, 1] and
// lightness [0, 1] components. Alpha is ignored.
func (c RGBA) HSL() (h, s, l float64) {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	delta := max - min

	l = (max + min) / 2

	if delta == 0 {
		return 0, 0, l
	}

	if l < 0.5 {
		s = delta / (max + min)
	} else {
		s = delta / (2 - max - min)
	}

	switch max {
	case r:
		h = math.Mod((g-b)/delta, 6)
	case g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}

	h *= 60
	if h < 0 {
		h += 360
	}

	return h, s, l
}

// FromHSL composes an opaque color from hue [0, 360), saturation [0, 1] and
// lightness [0, 1] components.
func FromHSL(h, s, l float64) RGBA {
	if s == 0 {
		v := channel(l)
		return RGBA{R: v, G: v, B: v, A: 1}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	hue := h / 360

	return RGBA{
		R: channel(hueToChannel(p, q, hue+1.0/3)),
		G: channel(hueToChannel(p, q, hue)),
		B: channel(hueToChannel(p, q, hue-1.0/3)),
		A: 1,
	}
}

// channel converts a [0, 1] component to an integer channel value.
func channel(v float64) int {
	return int(math.Round(v * 255))
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}

	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}
