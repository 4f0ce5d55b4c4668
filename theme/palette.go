package theme

import "github.com/samber/lo"

// Built-in palettes. The teal accent and slate neutrals are shared between
// both variants so light/dark swaps keep the same brand hue.
var (
	// Light is the built-in light palette.
	Light = Palette{
		Background:    "#F8FAFC",
		Card:          "#FFFFFF",
		Border:        "#E2E8F0",
		TextPrimary:   "#0F172A",
		TextSecondary: "#475569",
		TintPrimary:   "#0F766E",
		TintSoftBg:    "#CCFBF1",
		Positive:      "#16A34A",
		Negative:      "#DC2626",
		Warning:       "#D97706",
	}

	// Dark is the built-in dark palette.
	Dark = Palette{
		Background:    "#0B1220",
		Card:          "#151E2E",
		Border:        "#1E293B",
		TextPrimary:   "#E2E8F0",
		TextSecondary: "#94A3B8",
		TintPrimary:   "#14B8A6",
		TintSoftBg:    "#134E4A",
		Positive:      "#22C55E",
		Negative:      "#F87171",
		Warning:       "#FBBF24",
	}
)

// builtins registers the palettes that ship with the application.
var builtins = map[string]Palette{
	"light": Light,
	"dark":  Dark,
}

// Builtins returns the names of the built-in palettes.
func Builtins() []string {
	return []string{"dark", "light"}
}

// Get retrieves a palette by name, consulting built-ins first and the
// user-defined registry second.
func Get(name string) (Palette, bool) {
	if p, ok := builtins[name]; ok {
		return p, true
	}

	customs, err := Customs()
	if err != nil {
		return Palette{}, false
	}

	p, ok := customs[name]
	return p, ok
}

// Names returns every available palette name, built-in and custom alike.
func Names() []string {
	names := Builtins()

	customs, err := Customs()
	if err != nil {
		return names
	}

	return append(names, lo.Keys(customs)...)
}
