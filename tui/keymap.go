// Package tui provides an interactive terminal preview of resolved widget styles.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keymap defines the keyboard interactions available inside the preview.
type keymap struct {
	quit,
	nextKind, prevKind,
	left, right,
	size,
	toggleState,
	nextPalette,
	toggleHex,
	showHelp key.Binding
}

func newKeymap() *keymap {
	return &keymap{
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "ctrl+d"),
			key.WithHelp("q", "quit"),
		),
		nextKind: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next widget"),
		),
		prevKind: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous widget"),
		),
		left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous role"),
		),
		right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next role"),
		),
		size: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "cycle size"),
		),
		toggleState: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle state"),
		),
		nextPalette: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "next palette"),
		),
		toggleHex: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "toggle hex"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

func (k *keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.nextKind, k.left, k.toggleState, k.nextPalette, k.showHelp, k.quit}
}

func (k *keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{
		k.nextKind, k.prevKind,
		k.left, k.right,
		k.size, k.toggleState,
		k.nextPalette, k.toggleHex,
		k.quit,
	}}
}
