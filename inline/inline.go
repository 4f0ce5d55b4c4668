// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/swatch-cli/swatch/style"
	"github.com/swatch-cli/swatch/theme"
	"github.com/swatch-cli/swatch/util"
	"github.com/swatch-cli/swatch/widget"
)

// Run resolves the configured slice of the option space against the palette
// and dispatches the results to the output writer, either as a structured
// JSON document or as rendered terminal swatches.
func Run(options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	entries := resolve(options)

	if options.Json {
		return writeJson(options.Out, &Output{
			Palette: options.PaletteName,
			Entries: entries,
		})
	}

	return writeSwatches(options, entries)
}

// resolve enumerates the requested role parameters and resolves each point.
func resolve(options *Options) []Entry {
	switch options.Kind {
	case KindChip:
		return resolveChips(options)
	case KindBadge:
		return resolveBadges(options)
	default:
		return resolveButtons(options)
	}
}

func resolveButtons(options *Options) []Entry {
	variants := options.Variants
	if len(variants) == 0 {
		variants = widget.AllVariants()
	}

	sizes := options.Sizes
	if len(sizes) == 0 {
		sizes = widget.AllSizes()
	}

	var entries []Entry
	for _, variant := range variants {
		for _, size := range sizes {
			for _, disabled := range states(options.Disabled) {
				descriptor := widget.ResolveButton(options.Palette, widget.ButtonOptions{
					Variant:  variant,
					Size:     size,
					Disabled: disabled,
				})

				entries = append(entries, Entry{
					Kind:     KindButton,
					Variant:  variant,
					Size:     size,
					Disabled: lo.ToPtr(disabled),
					Style:    &descriptor,
				})
			}
		}
	}

	return entries
}

func resolveChips(options *Options) []Entry {
	tones := options.Tones
	if len(tones) == 0 {
		tones = theme.AllTones()
	}

	sizes := options.Sizes
	if len(sizes) == 0 {
		sizes = []widget.Size{widget.SizeSmall, widget.SizeMedium}
	}

	var entries []Entry
	for _, tone := range tones {
		for _, size := range sizes {
			for _, selected := range states(options.Selected) {
				descriptor := widget.ResolveChip(options.Palette, widget.ChipOptions{
					Tone:     tone,
					Size:     size,
					Selected: selected,
				})

				entries = append(entries, Entry{
					Kind:     KindChip,
					Tone:     string(tone),
					Size:     size,
					Selected: lo.ToPtr(selected),
					Style:    &descriptor,
				})
			}
		}
	}

	return entries
}

func resolveBadges(options *Options) []Entry {
	tones := options.Tones
	if len(tones) == 0 {
		tones = theme.AllTones()
	}

	var entries []Entry
	for _, tone := range tones {
		for _, selected := range states(options.Selected) {
			visuals := widget.Badge(options.Palette, widget.BadgeOptions{
				Tone:     tone,
				Selected: selected,
			})

			entries = append(entries, Entry{
				Kind:     KindBadge,
				Tone:     string(tone),
				Selected: lo.ToPtr(selected),
				Badge:    &visuals,
			})
		}
	}

	return entries
}

// writeSwatches renders each entry as a labeled terminal swatch, constrained
// to the terminal width when one is available.
func writeSwatches(options *Options, entries []Entry) error {
	width, _, err := util.TerminalSize()
	if err != nil {
		width = 0
	}

	for _, entry := range entries {
		label := entryLabel(entry)

		var rendered string
		if entry.Badge != nil {
			rendered = style.TerminalBadge(*entry.Badge, label)
		} else {
			rendered = style.Terminal(*entry.Style, label)
		}

		if width > 0 {
			rendered = style.Truncate(width)(rendered)
		}

		if _, err := fmt.Fprintln(options.Out, rendered); err != nil {
			return fmt.Errorf("write swatch: %w", err)
		}
	}

	return nil
}

// entryLabel composes a compact human-readable identifier for a swatch.
func entryLabel(entry Entry) string {
	label := string(entry.Kind)

	if entry.Variant != "" {
		label += " " + string(entry.Variant)
	}
	if entry.Tone != "" {
		label += " " + entry.Tone
	}
	if entry.Size != "" {
		label += " " + string(entry.Size)
	}
	if entry.Disabled != nil && *entry.Disabled {
		label += " disabled"
	}
	if entry.Selected != nil && *entry.Selected {
		label += " selected"
	}

	return label
}
