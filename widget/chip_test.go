package widget

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/swatch-cli/swatch/color"
	"github.com/swatch-cli/swatch/theme"
)

func TestResolveChip(t *testing.T) {
	palette := theme.Light

	Convey("ResolveChip", t, func() {
		Convey("Sizing table", func() {
			sm := ResolveChip(palette, ChipOptions{Size: SizeSmall})
			So(sm.Container.Height, ShouldEqual, 28)
			So(sm.Container.PaddingHorizontal, ShouldEqual, 8)
			So(sm.Container.Radius, ShouldEqual, 8)
			So(sm.Text.Size, ShouldEqual, 12)

			md := ResolveChip(palette, ChipOptions{Size: SizeMedium})
			So(md.Container.Height, ShouldEqual, 32)
			So(md.Container.PaddingHorizontal, ShouldEqual, 12)
			So(md.Container.Radius, ShouldEqual, 16)
			So(md.Text.Size, ShouldEqual, 13)

			// Chips only know sm and md; anything else takes the md record.
			lg := ResolveChip(palette, ChipOptions{Size: SizeLarge})
			So(lg.Container, ShouldResemble, md.Container)
		})

		Convey("Neutral resting look uses the card surface", func() {
			d := ResolveChip(palette, ChipOptions{Tone: theme.ToneNeutral})
			So(d.Container.Background, ShouldEqual, palette.Card)
			So(d.Container.BorderColor, ShouldEqual, palette.Border)
			So(d.Text.Color, ShouldNotEqual, palette.TextSecondary)
			So(color.Parse(d.Text.Color).IsPresent(), ShouldBeTrue)
		})

		Convey("Accent resting look uses the soft tint surface", func() {
			d := ResolveChip(palette, ChipOptions{Tone: theme.ToneAccent})
			So(d.Container.Background, ShouldEqual, palette.TintSoftBg)
			So(d.Container.BorderColor, ShouldEqual, palette.Border)
		})

		Convey("Status tones rest on a translucent soft fill", func() {
			for _, tone := range []theme.Tone{theme.ToneSuccess, theme.ToneWarning, theme.ToneDanger} {
				d := ResolveChip(palette, ChipOptions{Tone: tone})
				base := theme.BaseColor(palette, tone)

				So(d.Container.Background, ShouldEqual, color.WithAlpha(base, 0.12))
				So(d.Container.BorderColor, ShouldEqual, palette.Border)
			}
		})

		Convey("Selected fills differ from resting fills for every tone", func() {
			for _, tone := range append(theme.AllTones(), theme.Tone("made-up")) {
				resting := ResolveChip(palette, ChipOptions{Tone: tone})
				selected := ResolveChip(palette, ChipOptions{Tone: tone, Selected: true})

				So(selected.Container.Background, ShouldNotEqual, resting.Container.Background)
				So(selected.Container.BorderColor, ShouldEqual, selected.Container.Background)
				So(selected.Text.Color, ShouldBeIn, color.DefaultLightText, color.DefaultDarkText)
			}
		})

		Convey("Idempotent for identical inputs", func() {
			options := ChipOptions{Tone: theme.ToneWarning, Size: SizeSmall, Selected: true}
			So(ResolveChip(palette, options), ShouldResemble, ResolveChip(palette, options))
		})
	})
}

func TestRipple(t *testing.T) {
	Convey("Ripple", t, func() {
		palette := theme.Dark

		Convey("Always a 0.12-alpha derivative of the tone base color", func() {
			for _, tone := range theme.AllTones() {
				base := theme.BaseColor(palette, tone)
				So(Ripple(palette, tone), ShouldEqual, color.WithAlpha(base, 0.12))
			}
		})

		Convey("Unknown tones ripple with the accent hue", func() {
			So(Ripple(palette, "mystery"), ShouldEqual, color.WithAlpha(palette.TintPrimary, 0.12))
		})
	})
}

func TestBadge(t *testing.T) {
	palette := theme.Light

	Convey("Badge", t, func() {
		Convey("Selected badges fill solid with white text", func() {
			for _, tone := range theme.AllTones() {
				base := theme.BaseColor(palette, tone)
				visuals := Badge(palette, BadgeOptions{Tone: tone, Selected: true})

				So(visuals.Background, ShouldEqual, base)
				So(visuals.Border, ShouldEqual, base)
				So(visuals.Text, ShouldEqual, "#FFFFFF")
				So(visuals.Ripple, ShouldEqual, color.WithAlpha(base, 0.12))
			}
		})

		Convey("Resting badges wear translucent derivatives of the base hue", func() {
			base := theme.BaseColor(palette, theme.ToneDanger)
			visuals := Badge(palette, BadgeOptions{Tone: theme.ToneDanger})

			So(visuals.Background, ShouldEqual, color.WithAlpha(base, 0.10))
			So(visuals.Border, ShouldEqual, color.WithAlpha(base, 0.20))
			So(visuals.Text, ShouldEqual, base)
			So(visuals.Ripple, ShouldEqual, color.WithAlpha(base, 0.12))
		})

		Convey("Ripple is identical across selection states", func() {
			resting := Badge(palette, BadgeOptions{Tone: theme.ToneSuccess})
			selected := Badge(palette, BadgeOptions{Tone: theme.ToneSuccess, Selected: true})
			So(resting.Ripple, ShouldEqual, selected.Ripple)
		})
	})
}
