package theme

// Tone is the semantic intent of an element, distinct from its
// palette-specific color.
type Tone string

// The closed set of recognized tones.
const (
	ToneNeutral Tone = "neutral"
	ToneAccent  Tone = "accent"
	ToneSuccess Tone = "success"
	ToneWarning Tone = "warning"
	ToneDanger  Tone = "danger"
)

// AllTones returns the closed enumeration of recognized tones.
func AllTones() []Tone {
	return []Tone{ToneNeutral, ToneAccent, ToneSuccess, ToneWarning, ToneDanger}
}

// ParseTone maps a string onto the closed tone set. Unrecognized values fall
// through to neutral; a theme value never fails the render path.
func ParseTone(s string) Tone {
	switch Tone(s) {
	case ToneAccent, ToneSuccess, ToneWarning, ToneDanger:
		return Tone(s)
	default:
		return ToneNeutral
	}
}

// BaseColor maps a tone onto its semantic base color token. Neutral shares
// the accent hue for interaction feedback even though its resting look
// differs; unknown tones take the same default.
func BaseColor(p Palette, tone Tone) string {
	switch tone {
	case ToneSuccess:
		return p.Positive
	case ToneWarning:
		return p.Warning
	case ToneDanger:
		return p.Negative
	default:
		return p.TintPrimary
	}
}
