package shade

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/swatch-cli/swatch/color"
)

func TestMuted(t *testing.T) {
	Convey("Muted", t, func() {
		Convey("Luminance lands strictly between base and background", func() {
			base, background := "#0F766E", "#FFFFFF"

			muted := Muted(base, background)
			lum := color.RelativeLuminance(muted).MustGet()
			baseLum := color.RelativeLuminance(base).MustGet()
			bgLum := color.RelativeLuminance(background).MustGet()

			So(lum, ShouldBeGreaterThan, baseLum)
			So(lum, ShouldBeLessThan, bgLum)
		})

		Convey("Result differs from both inputs", func() {
			muted := Muted("#F43F5E", "#0B1220")
			So(muted, ShouldNotEqual, "#F43F5E")
			So(muted, ShouldNotEqual, "#0B1220")
			So(color.Parse(muted).IsPresent(), ShouldBeTrue)
		})

		Convey("Identical inputs collapse to themselves", func() {
			So(Muted("#336699", "#336699"), ShouldEqual, "#336699")
		})

		Convey("Unparsable input degrades to the base string", func() {
			So(Muted("not-a-color", "#FFFFFF"), ShouldEqual, "not-a-color")
			So(Muted("#336699", "nope"), ShouldEqual, "#336699")
		})
	})
}

func TestVibrant(t *testing.T) {
	Convey("Vibrant", t, func() {
		Convey("Result remains a valid hex color", func() {
			v := Vibrant("#0F766E")
			So(color.Parse(v).IsPresent(), ShouldBeTrue)
			So(v[0], ShouldEqual, '#')
		})

		Convey("Never collapses to white or black", func() {
			So(Vibrant("#FEFEFE"), ShouldNotEqual, "#ffffff")
			So(Vibrant("#010101"), ShouldNotEqual, "#000000")
		})

		Convey("Stays away from the mid-luminance boundary", func() {
			for _, base := range []string{"#0F766E", "#F43F5E", "#16A34A", "#D97706"} {
				text := color.ChooseReadableText(Vibrant(base))
				So(text, ShouldBeIn, color.DefaultLightText, color.DefaultDarkText)
			}
		})

		Convey("Unparsable input is returned unchanged", func() {
			So(Vibrant("bogus"), ShouldEqual, "bogus")
		})
	})
}

func TestDisabled(t *testing.T) {
	Convey("Disabled", t, func() {
		background := "#FFFFFF"
		roles := Roles{Background: "#F1F5F9", Border: "#E2E8F0", Text: "#0F172A"}

		Convey("Every opaque role color is muted", func() {
			muted := Disabled(roles, background)
			So(muted.Background, ShouldNotEqual, roles.Background)
			So(muted.Border, ShouldNotEqual, roles.Border)
			So(muted.Text, ShouldNotEqual, roles.Text)
		})

		Convey("Transparent backgrounds stay transparent", func() {
			ghost := Disabled(Roles{Background: Transparent, Text: "#0F766E"}, background)
			So(ghost.Background, ShouldEqual, Transparent)
			So(ghost.Text, ShouldNotEqual, "#0F766E")
		})

		Convey("Deterministic across invocations", func() {
			So(Disabled(roles, background), ShouldResemble, Disabled(roles, background))
		})
	})
}
