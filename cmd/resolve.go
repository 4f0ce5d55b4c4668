// Package cmd implements the command-line interface for swatch.
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/swatch-cli/swatch/filesystem"
	"github.com/swatch-cli/swatch/inline"
	"github.com/swatch-cli/swatch/key"
	"github.com/swatch-cli/swatch/theme"
	"github.com/swatch-cli/swatch/widget"
)

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().StringP("kind", "k", string(inline.KindButton), "The control family to resolve (button, chip, badge)")
	resolveCmd.Flags().StringSlice("variant", []string{}, "Restrict resolution to the given button variants")
	resolveCmd.Flags().StringSlice("tone", []string{}, "Restrict resolution to the given chip or badge tones")
	resolveCmd.Flags().StringSlice("size", []string{}, "Restrict resolution to the given control sizes")
	resolveCmd.Flags().Bool("disabled", false, "Fix the button state instead of enumerating both")
	resolveCmd.Flags().Bool("selected", false, "Fix the chip or badge state instead of enumerating both")
	resolveCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	resolveCmd.Flags().StringP("output", "o", "", "Specify a file path to write the command output")

	lo.Must0(resolveCmd.RegisterFlagCompletionFunc("kind", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(inline.AllKinds(), func(k inline.Kind, _ int) string { return string(k) }), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(resolveCmd.RegisterFlagCompletionFunc("variant", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(widget.AllVariants(), func(v widget.Variant, _ int) string { return string(v) }), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(resolveCmd.RegisterFlagCompletionFunc("tone", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(theme.AllTones(), func(t theme.Tone, _ int) string { return string(t) }), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(resolveCmd.RegisterFlagCompletionFunc("size", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(widget.AllSizes(), func(s widget.Size, _ int) string { return string(s) }), cobra.ShellCompDirectiveNoFileComp
	}))
}

// resolveCmd executes the application in non-interactive, scriptable mode.
var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve widget styles in non-interactive, scriptable mode",
	Long: `Resolve the style descriptors for a control family against the active palette.

Without narrowing flags, every recognized variant, tone, size and state
combination for the chosen kind is enumerated. Slice flags narrow one axis
while leaving the others enumerated; the state flags pin a single state.

Values are passed through the same fallbacks the resolvers use, so an
unknown variant, tone or size resolves as its documented default rather
than failing.`,
	Run: func(cmd *cobra.Command, args []string) {
		kind, err := inline.ParseKind(lo.Must(cmd.Flags().GetString("kind")))
		handleErr(err)

		paletteName := viper.GetString(key.PaletteDefault)
		palette, ok := theme.Get(paletteName)
		if !ok {
			handleErr(fmt.Errorf("unknown palette %q", paletteName))
		}

		output := lo.Must(cmd.Flags().GetString("output"))
		var writer io.Writer
		if output != "" {
			writer, err = filesystem.API().Create(output)
			handleErr(err)
		} else {
			writer = os.Stdout
		}

		disabled := mo.None[bool]()
		if cmd.Flags().Changed("disabled") {
			disabled = mo.Some(lo.Must(cmd.Flags().GetBool("disabled")))
		}

		selected := mo.None[bool]()
		if cmd.Flags().Changed("selected") {
			selected = mo.Some(lo.Must(cmd.Flags().GetBool("selected")))
		}

		options := &inline.Options{
			Out:         writer,
			PaletteName: paletteName,
			Palette:     palette,
			Kind:        kind,
			Variants: lo.Map(lo.Must(cmd.Flags().GetStringSlice("variant")), func(s string, _ int) widget.Variant {
				return widget.ParseVariant(s)
			}),
			Tones: lo.Map(lo.Must(cmd.Flags().GetStringSlice("tone")), func(s string, _ int) theme.Tone {
				return theme.ParseTone(s)
			}),
			Sizes: lo.Map(lo.Must(cmd.Flags().GetStringSlice("size")), func(s string, _ int) widget.Size {
				return widget.ParseSize(s)
			}),
			Disabled: disabled,
			Selected: selected,
			Json:     lo.Must(cmd.Flags().GetBool("json")),
		}

		handleErr(inline.Run(options))
	},
}

func init() {
	resolveCmd.AddCommand(resolveSchemaCmd)
}

// resolveSchemaCmd generates the JSON schema for structured resolve output.
var resolveSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema for structured resolve output",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "output", "entry", "palette", "styledescriptor", "badgevisuals":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		schema := reflector.Reflect(&inline.Output{})

		handleErr(json.NewEncoder(os.Stdout).Encode(schema))
	},
}
