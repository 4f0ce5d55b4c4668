// Package tui provides an interactive terminal preview of resolved widget styles.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/swatch-cli/swatch/theme"
)

// Options encapsulates the runtime configuration for the terminal user interface.
type Options struct {
	PaletteName string
}

// Run initializes and executes the preview Bubble Tea application loop.
func Run(options *Options) error {
	palette, ok := theme.Get(options.PaletteName)
	if !ok {
		return fmt.Errorf("unknown palette %q", options.PaletteName)
	}

	bubble := newBubble(options.PaletteName, palette)

	_, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	return err
}
