// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"encoding/json"
	"io"

	"github.com/swatch-cli/swatch/widget"
)

// Entry is one resolved point of the option space.
type Entry struct {
	Kind Kind `json:"kind"`
	// Role parameters; only those applicable to the kind are set.
	Variant  widget.Variant `json:"variant,omitempty"`
	Tone     string         `json:"tone,omitempty"`
	Size     widget.Size    `json:"size,omitempty"`
	Disabled *bool          `json:"disabled,omitempty"`
	Selected *bool          `json:"selected,omitempty"`

	// Resolved output; exactly one of the two is set.
	Style *widget.StyleDescriptor `json:"style,omitempty"`
	Badge *widget.BadgeVisuals    `json:"badge,omitempty"`
}

// Output is the structured document inline mode emits in JSON format.
type Output struct {
	Palette string  `json:"palette"`
	Entries []Entry `json:"entries"`
}

func writeJson(out io.Writer, document *Output) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(document)
}
