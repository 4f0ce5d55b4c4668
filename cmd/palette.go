// Package cmd implements the command-line interface for swatch.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/swatch-cli/swatch/filesystem"
	"github.com/swatch-cli/swatch/icon"
	"github.com/swatch-cli/swatch/key"
	"github.com/swatch-cli/swatch/open"
	"github.com/swatch-cli/swatch/style"
	"github.com/swatch-cli/swatch/theme"
	"github.com/swatch-cli/swatch/util"
	"github.com/swatch-cli/swatch/where"
)

func init() {
	rootCmd.AddCommand(paletteCmd)
}

// paletteCmd provides a parent command for managing semantic palettes.
var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Manage built-in and custom semantic palettes",
}

func init() {
	paletteCmd.AddCommand(paletteListCmd)

	paletteListCmd.Flags().BoolP("raw", "r", false, "Suppress header and metadata descriptions in the output")
	paletteListCmd.Flags().BoolP("custom", "c", false, "Display only user-installed custom palettes")
	paletteListCmd.Flags().BoolP("builtin", "b", false, "Display only built-in palettes")

	paletteListCmd.MarkFlagsMutuallyExclusive("custom", "builtin")
	paletteListCmd.SetOut(os.Stdout)
}

// paletteListCmd displays a summary of all known palettes.
var paletteListCmd = &cobra.Command{
	Use:   "list",
	Short: "Display a collection of all known palettes",
	Run: func(cmd *cobra.Command, args []string) {
		printHeader := !lo.Must(cmd.Flags().GetBool("raw"))
		headerStyle := style.New().Foreground(style.Blue).Bold(true).Render
		h := func(s string) {
			if printHeader {
				cmd.Println(headerStyle(s))
			}
		}

		printBuiltin := func() {
			h("Builtin:")
			for _, name := range theme.Builtins() {
				cmd.Println(name)
			}
		}

		printCustom := func() {
			h("Custom:")
			customs, err := theme.Customs()
			handleErr(err)

			for _, name := range lo.Keys(customs) {
				cmd.Println(name)
			}
		}

		switch {
		case lo.Must(cmd.Flags().GetBool("builtin")):
			printBuiltin()
		case lo.Must(cmd.Flags().GetBool("custom")):
			printCustom()
		default:
			printBuiltin()
			if printHeader {
				cmd.Println()
			}
			printCustom()
		}
	},
}

func init() {
	paletteCmd.AddCommand(paletteShowCmd)

	paletteShowCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON string")
	paletteShowCmd.SetOut(os.Stdout)
}

// paletteShowCmd renders every token of a palette with its resolved color.
var paletteShowCmd = &cobra.Command{
	Use:               "show [name]",
	Short:             "Render every token of a palette with its resolved color",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionPaletteNames,
	Run: func(cmd *cobra.Command, args []string) {
		name := viper.GetString(key.PaletteDefault)
		if len(args) > 0 {
			name = args[0]
		}

		palette, ok := theme.Get(name)
		if !ok {
			handleErr(fmt.Errorf("unknown palette %q", name))
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(palette))
			return
		}

		cmd.Println(style.Title(" " + name + " "))
		cmd.Println()

		for _, token := range palette.Tokens() {
			swatch := style.New().
				Background(style.TerminalColor(token.Value)).
				Render("      ")

			cmd.Printf("%s  %-14s %s\n", swatch, token.Name, style.Faint(token.Value))
		}
	},
}

func init() {
	paletteCmd.AddCommand(paletteUseCmd)
}

// paletteUseCmd persists the default palette, interactively when no name is given.
var paletteUseCmd = &cobra.Command{
	Use:               "use [name]",
	Short:             "Persist the default palette for future invocations",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionPaletteNames,
	Run: func(cmd *cobra.Command, args []string) {
		var name string

		if len(args) > 0 {
			name = args[0]
		} else {
			prompt := survey.Select{
				Message: "Which palette should be the default?",
				Options: theme.Names(),
				Default: viper.GetString(key.PaletteDefault),
			}
			handleErr(survey.AskOne(&prompt, &name))
		}

		if _, ok := theme.Get(name); !ok {
			handleErr(fmt.Errorf("unknown palette %q", name))
		}

		viper.Set(key.PaletteDefault, name)
		switch err := viper.WriteConfig(); err.(type) {
		case viper.ConfigFileNotFoundError:
			handleErr(viper.SafeWriteConfig())
		default:
			handleErr(err)
		}

		fmt.Printf(
			"%s set default palette to %s\n",
			style.Fg(style.Green)(icon.Get(icon.Success)),
			style.Fg(style.Yellow)(name),
		)
	},
}

func init() {
	paletteCmd.AddCommand(paletteNewCmd)

	paletteNewCmd.Flags().StringP("name", "n", "", "The name of the new custom palette")
	paletteNewCmd.Flags().StringP("from", "f", "light", "The built-in palette to copy token values from")

	lo.Must0(paletteNewCmd.MarkFlagRequired("name"))
	lo.Must0(paletteNewCmd.RegisterFlagCompletionFunc("from", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return theme.Builtins(), cobra.ShellCompDirectiveNoFileComp
	}))
}

// paletteNewCmd scaffolds a custom palette file seeded from a built-in.
var paletteNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Scaffold a new custom palette file seeded from a built-in",
	Long: `Generate a custom palette file in the palettes directory.

The file is seeded with the token values of a built-in palette so every
token starts valid; edit the values in place afterwards.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.SetOut(os.Stdout)

		var (
			name = lo.Must(cmd.Flags().GetString("name"))
			from = lo.Must(cmd.Flags().GetString("from"))
		)

		base, ok := theme.Get(from)
		if !ok {
			handleErr(fmt.Errorf("unknown palette %q", from))
		}

		target := filepath.Join(where.Palettes(), name+".json")

		exists, err := filesystem.API().Exists(target)
		handleErr(err)
		if exists {
			handleErr(fmt.Errorf("palette %q already exists", name))
		}

		f, err := filesystem.API().Create(target)
		handleErr(err)

		defer util.Ignore(f.Close)

		encoder := json.NewEncoder(f)
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(base))

		handleErr(theme.InvalidateCustoms())

		cmd.Println(target)
	},
}

func init() {
	paletteCmd.AddCommand(paletteEditCmd)

	paletteEditCmd.Flags().StringP("app", "a", "", "The application to open the palette file with")
}

// paletteEditCmd opens a custom palette file for editing.
var paletteEditCmd = &cobra.Command{
	Use:   "edit [name]",
	Short: "Open a custom palette file with the system handler",
	Args:  cobra.ExactArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		customs, err := theme.Customs()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		return lo.Keys(customs), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		path := filepath.Join(where.Palettes(), args[0]+".json")

		exists, err := filesystem.API().Exists(path)
		handleErr(err)
		if !exists {
			handleErr(fmt.Errorf("unknown custom palette %q", args[0]))
		}

		handleErr(open.RunWith(path, lo.Must(cmd.Flags().GetString("app"))))

		// The edited file may no longer match the cached registry.
		handleErr(theme.InvalidateCustoms())
	},
}

func init() {
	paletteCmd.AddCommand(paletteRemoveCmd)

	paletteRemoveCmd.Flags().StringArrayP("name", "n", []string{}, "Specify the name of the custom palette(s) to remove")
	lo.Must0(paletteRemoveCmd.RegisterFlagCompletionFunc("name", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		customs, err := theme.Customs()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		return lo.Keys(customs), cobra.ShellCompDirectiveNoFileComp
	}))
}

// paletteRemoveCmd removes custom palette files from the palettes directory.
var paletteRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Permanently remove custom palettes from the system",
	Run: func(cmd *cobra.Command, args []string) {
		names := lo.Must(cmd.Flags().GetStringArray("name"))

		for _, name := range names {
			path := filepath.Join(where.Palettes(), name+".json")
			handleErr(filesystem.API().Remove(path))
			fmt.Printf("%s successfully removed %s\n", icon.Get(icon.Success), style.Fg(style.Yellow)(name))
		}

		if len(names) > 0 {
			handleErr(theme.InvalidateCustoms())
			fmt.Println(style.Faint("removed " + util.Quantify(len(names), "palette", "palettes")))
		}
	},
}
