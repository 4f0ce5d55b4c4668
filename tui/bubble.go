// Package tui provides an interactive terminal preview of resolved widget styles.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
	"github.com/spf13/viper"

	"github.com/swatch-cli/swatch/inline"
	appkey "github.com/swatch-cli/swatch/key"
	"github.com/swatch-cli/swatch/style"
	"github.com/swatch-cli/swatch/theme"
	"github.com/swatch-cli/swatch/widget"
)

var paddingStyle = lipgloss.NewStyle().Padding(1, 2)

// previewBubble holds the cursor over the role space together with the
// palette currently being previewed.
type previewBubble struct {
	paletteName string
	palette     theme.Palette
	palettes    []string

	kindIdx    int
	variantIdx int
	toneIdx    int
	sizeIdx    int
	stateOn    bool
	showHex    bool

	width  int
	height int

	keymap *keymap
	helpC  help.Model
}

func newBubble(paletteName string, palette theme.Palette) *previewBubble {
	variant := widget.ParseVariant(viper.GetString(appkey.PreviewVariant))
	tone := theme.ParseTone(viper.GetString(appkey.PreviewTone))
	size := widget.ParseSize(viper.GetString(appkey.PreviewSize))

	return &previewBubble{
		paletteName: paletteName,
		palette:     palette,
		palettes:    theme.Names(),
		variantIdx:  lo.IndexOf(widget.AllVariants(), variant),
		toneIdx:     lo.IndexOf(theme.AllTones(), tone),
		sizeIdx:     lo.IndexOf(widget.AllSizes(), size),
		showHex:     viper.GetBool(appkey.PreviewShowHex),
		keymap:      newKeymap(),
		helpC:       help.New(),
	}
}

func (b *previewBubble) Init() tea.Cmd {
	return nil
}

func (b *previewBubble) kind() inline.Kind {
	return inline.AllKinds()[b.kindIdx]
}

// roleCount reports how many values the left/right cursor cycles through for
// the active widget kind: variants for buttons, tones otherwise.
func (b *previewBubble) roleCount() int {
	if b.kind() == inline.KindButton {
		return len(widget.AllVariants())
	}
	return len(theme.AllTones())
}

func (b *previewBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		b.helpC.Width = msg.Width
		return b, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		case key.Matches(msg, b.keymap.nextKind):
			b.kindIdx = (b.kindIdx + 1) % len(inline.AllKinds())
		case key.Matches(msg, b.keymap.prevKind):
			b.kindIdx = (b.kindIdx + len(inline.AllKinds()) - 1) % len(inline.AllKinds())
		case key.Matches(msg, b.keymap.right):
			if b.kind() == inline.KindButton {
				b.variantIdx = (b.variantIdx + 1) % b.roleCount()
			} else {
				b.toneIdx = (b.toneIdx + 1) % b.roleCount()
			}
		case key.Matches(msg, b.keymap.left):
			if b.kind() == inline.KindButton {
				b.variantIdx = (b.variantIdx + b.roleCount() - 1) % b.roleCount()
			} else {
				b.toneIdx = (b.toneIdx + b.roleCount() - 1) % b.roleCount()
			}
		case key.Matches(msg, b.keymap.size):
			b.sizeIdx = (b.sizeIdx + 1) % len(widget.AllSizes())
		case key.Matches(msg, b.keymap.toggleState):
			b.stateOn = !b.stateOn
		case key.Matches(msg, b.keymap.nextPalette):
			b.cyclePalette()
		case key.Matches(msg, b.keymap.toggleHex):
			b.showHex = !b.showHex
		case key.Matches(msg, b.keymap.showHelp):
			b.helpC.ShowAll = !b.helpC.ShowAll
		}
	}

	return b, nil
}

// cyclePalette advances to the next known palette, built-in or custom.
func (b *previewBubble) cyclePalette() {
	if len(b.palettes) == 0 {
		return
	}

	idx := lo.IndexOf(b.palettes, b.paletteName)
	next := b.palettes[(idx+1)%len(b.palettes)]

	palette, ok := theme.Get(next)
	if !ok {
		return
	}

	b.paletteName = next
	b.palette = palette
}

func (b *previewBubble) View() string {
	var sections []string

	sections = append(sections, style.Title(" swatch ")+"  "+style.Faint("palette: "+b.paletteName))
	sections = append(sections, "")
	sections = append(sections, b.viewGrid())
	sections = append(sections, "")
	sections = append(sections, b.viewStatus())

	if b.showHex {
		sections = append(sections, "")
		sections = append(sections, b.viewHex())
	}

	sections = append(sections, "")
	sections = append(sections, b.helpC.View(b.keymap))

	return paddingStyle.Render(strings.Join(sections, "\n"))
}

// viewGrid renders every role of the active kind side by side, with the
// cursor's row marked.
func (b *previewBubble) viewGrid() string {
	var rows []string

	switch b.kind() {
	case inline.KindButton:
		size := widget.AllSizes()[b.sizeIdx]
		for i, variant := range widget.AllVariants() {
			descriptor := widget.ResolveButton(b.palette, widget.ButtonOptions{
				Variant:  variant,
				Size:     size,
				Disabled: b.stateOn,
			})
			rows = append(rows, b.row(i == b.variantIdx, string(variant), style.Terminal(descriptor, string(variant))))
		}
	case inline.KindChip:
		size := widget.AllSizes()[b.sizeIdx]
		for i, tone := range theme.AllTones() {
			descriptor := widget.ResolveChip(b.palette, widget.ChipOptions{
				Tone:     tone,
				Size:     size,
				Selected: b.stateOn,
			})
			rows = append(rows, b.row(i == b.toneIdx, string(tone), style.Terminal(descriptor, string(tone))))
		}
	case inline.KindBadge:
		for i, tone := range theme.AllTones() {
			visuals := widget.Badge(b.palette, widget.BadgeOptions{
				Tone:     tone,
				Selected: b.stateOn,
			})
			rows = append(rows, b.row(i == b.toneIdx, string(tone), style.TerminalBadge(visuals, string(tone))))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (b *previewBubble) row(current bool, name, swatch string) string {
	marker := "  "
	if current {
		marker = style.Fg(style.Mauve)("> ")
	}

	label := style.Truncate(12)(name)
	if current {
		label = style.Bold(label)
	} else {
		label = style.Faint(label)
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, marker, label, "  ", swatch)
}

// viewStatus summarizes the cursor position in one wrapped line.
func (b *previewBubble) viewStatus() string {
	state := "resting"
	if b.stateOn {
		state = lo.Ternary(b.kind() == inline.KindButton, "disabled", "selected")
	}

	status := fmt.Sprintf(
		"%s · size %s · %s",
		b.kind(),
		widget.AllSizes()[b.sizeIdx],
		state,
	)

	if b.width > 0 {
		status = wordwrap.String(status, b.width-4)
	}

	return style.Faint(status)
}

// viewHex lists the resolved color strings for the cursor's role.
func (b *previewBubble) viewHex() string {
	var lines []string

	switch b.kind() {
	case inline.KindButton:
		descriptor := widget.ResolveButton(b.palette, widget.ButtonOptions{
			Variant:  widget.AllVariants()[b.variantIdx],
			Size:     widget.AllSizes()[b.sizeIdx],
			Disabled: b.stateOn,
		})
		lines = descriptorLines(descriptor)
	case inline.KindChip:
		descriptor := widget.ResolveChip(b.palette, widget.ChipOptions{
			Tone:     theme.AllTones()[b.toneIdx],
			Size:     widget.AllSizes()[b.sizeIdx],
			Selected: b.stateOn,
		})
		lines = descriptorLines(descriptor)
	case inline.KindBadge:
		visuals := widget.Badge(b.palette, widget.BadgeOptions{
			Tone:     theme.AllTones()[b.toneIdx],
			Selected: b.stateOn,
		})
		lines = []string{
			"background  " + visuals.Background,
			"border      " + visuals.Border,
			"text        " + visuals.Text,
			"ripple      " + visuals.Ripple,
		}
	}

	return style.Faint(strings.Join(lines, "\n"))
}

func descriptorLines(d widget.StyleDescriptor) []string {
	lines := []string{
		"background  " + d.Container.Background,
		"text        " + d.Text.Color,
	}

	if d.Container.BorderWidth > 0 {
		lines = append(lines, "border      "+d.Container.BorderColor)
	}

	return lines
}
