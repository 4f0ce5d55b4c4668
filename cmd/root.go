// Package cmd implements the command-line interface for swatch.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/swatch-cli/swatch/constant"
	"github.com/swatch-cli/swatch/icon"
	"github.com/swatch-cli/swatch/key"
	"github.com/swatch-cli/swatch/log"
	"github.com/swatch-cli/swatch/style"
	"github.com/swatch-cli/swatch/theme"
	"github.com/swatch-cli/swatch/tui"
	"github.com/swatch-cli/swatch/util"
	"github.com/swatch-cli/swatch/version"
	"github.com/swatch-cli/swatch/where"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("palette", "p", "", "Set the palette to resolve styles against")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("palette", completionPaletteNames))
	lo.Must0(viper.BindPFlag(key.PaletteDefault, rootCmd.PersistentFlags().Lookup("palette")))

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, square)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	// Initialize cleanup of localized temporary files on application startup.
	go func() {
		_ = util.Delete(where.Temp())
	}()
}

// completionPaletteNames offers known palette names, narrowed by fuzzy match
// on whatever the user has typed so far.
func completionPaletteNames(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	names := theme.Names()

	if toComplete != "" {
		names = fuzzy.FindFold(toComplete, names)
	}

	return names, cobra.ShellCompDirectiveNoFileComp
}

// rootCmd defines the entry point for the swatch application.
var rootCmd = &cobra.Command{
	Use:   constant.Swatch,
	Short: "A theme style-derivation engine for buttons, chips and badges",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(style.Mauve).Render("    - A theme style-derivation engine for buttons, chips and badges"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		options := tui.Options{
			PaletteName: viper.GetString(key.PaletteDefault),
		}
		handleErr(tui.Run(&options))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
