// Package theme defines the semantic color palettes and tone vocabulary the style engine resolves against.
//
// A Palette is a complete, already-resolved snapshot of semantic color tokens.
// The engine never selects or switches palettes on its own; callers pass a
// palette value into every resolver invocation, and may swap it wholesale
// (light to dark) between computations.
package theme

import (
	"fmt"

	"github.com/swatch-cli/swatch/color"
)

// Palette is a fixed mapping from semantic token name to a color value.
// Every value is a color string in canonical hex or rgba notation.
type Palette struct {
	Background    string `json:"background"`
	Card          string `json:"card"`
	Border        string `json:"border"`
	TextPrimary   string `json:"textPrimary"`
	TextSecondary string `json:"textSecondary"`
	TintPrimary   string `json:"tintPrimary"`
	TintSoftBg    string `json:"tintSoftBg"`
	Positive      string `json:"positive"`
	Negative      string `json:"negative"`
	Warning       string `json:"warning"`
}

// Tokens returns the palette as an ordered token-name/value listing,
// primarily for display and validation.
func (p Palette) Tokens() []Token {
	return []Token{
		{"background", p.Background},
		{"card", p.Card},
		{"border", p.Border},
		{"textPrimary", p.TextPrimary},
		{"textSecondary", p.TextSecondary},
		{"tintPrimary", p.TintPrimary},
		{"tintSoftBg", p.TintSoftBg},
		{"positive", p.Positive},
		{"negative", p.Negative},
		{"warning", p.Warning},
	}
}

// Token pairs a semantic token name with its color value.
type Token struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Validate confirms that every token holds a parseable color value.
// It is applied at the custom-palette load boundary, never inside resolvers;
// resolvers degrade per-color instead of failing the whole computation.
func (p Palette) Validate() error {
	for _, token := range p.Tokens() {
		if token.Value == "" {
			return fmt.Errorf("token %q is empty", token.Name)
		}

		if color.Parse(token.Value).IsAbsent() {
			return fmt.Errorf("token %q holds an unparsable color %q", token.Name, token.Value)
		}
	}

	return nil
}
