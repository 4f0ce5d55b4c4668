// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"fmt"
	"io"

	"github.com/samber/mo"
	"github.com/swatch-cli/swatch/theme"
	"github.com/swatch-cli/swatch/widget"
)

// Kind identifies the control family a resolution run targets.
type Kind string

// The control families inline mode can resolve.
const (
	KindButton Kind = "button"
	KindChip   Kind = "chip"
	KindBadge  Kind = "badge"
)

// AllKinds returns every control family identifier.
func AllKinds() []Kind {
	return []Kind{KindButton, KindChip, KindBadge}
}

// ParseKind maps a string onto a control family. Unlike theme values, the
// kind selects the output shape, so an unknown kind is a hard error rather
// than a silent fallback.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindButton, KindChip, KindBadge:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("unknown widget kind: %s", s)
	}
}

// Options configures a non-interactive resolution run.
//
// Empty variant/tone/size slices enumerate the full closed set. The state
// options distinguish "fixed state" (Some) from "enumerate both states"
// (None), matching how callers script the option space.
type Options struct {
	Out         io.Writer
	PaletteName string
	Palette     theme.Palette

	Kind     Kind
	Variants []widget.Variant
	Tones    []theme.Tone
	Sizes    []widget.Size

	Disabled mo.Option[bool]
	Selected mo.Option[bool]

	Json bool
}

// states expands a state option into the concrete states to enumerate.
func states(option mo.Option[bool]) []bool {
	if value, ok := option.Get(); ok {
		return []bool{value}
	}
	return []bool{false, true}
}
