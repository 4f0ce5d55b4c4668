package theme

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/swatch-cli/swatch/color"
)

func TestBuiltinPalettes(t *testing.T) {
	Convey("Built-in palettes", t, func() {
		Convey("Every token validates", func() {
			So(Light.Validate(), ShouldBeNil)
			So(Dark.Validate(), ShouldBeNil)
		})

		Convey("Get resolves built-ins by name", func() {
			light, ok := Get("light")
			So(ok, ShouldBeTrue)
			So(light, ShouldResemble, Light)

			dark, ok := Get("dark")
			So(ok, ShouldBeTrue)
			So(dark, ShouldResemble, Dark)
		})
	})
}

func TestValidate(t *testing.T) {
	Convey("Validate", t, func() {
		Convey("Rejects empty tokens", func() {
			So(Palette{}.Validate(), ShouldNotBeNil)
		})

		Convey("Rejects unparsable tokens", func() {
			broken := Light
			broken.Warning = "sort-of-orange"
			So(broken.Validate(), ShouldNotBeNil)
		})

		Convey("Accepts rgba tokens", func() {
			translucent := Light
			translucent.TintSoftBg = "rgba(204, 251, 241, 0.5)"
			So(translucent.Validate(), ShouldBeNil)
		})
	})
}

func TestTones(t *testing.T) {
	Convey("Tones", t, func() {
		Convey("ParseTone recognizes the closed set", func() {
			for _, tone := range AllTones() {
				So(ParseTone(string(tone)), ShouldEqual, tone)
			}
		})

		Convey("Unknown tones fall through to neutral", func() {
			So(ParseTone("sparkly"), ShouldEqual, ToneNeutral)
			So(ParseTone(""), ShouldEqual, ToneNeutral)
		})

		Convey("BaseColor maps tones onto semantic tokens", func() {
			So(BaseColor(Light, ToneNeutral), ShouldEqual, Light.TintPrimary)
			So(BaseColor(Light, ToneAccent), ShouldEqual, Light.TintPrimary)
			So(BaseColor(Light, ToneSuccess), ShouldEqual, Light.Positive)
			So(BaseColor(Light, ToneWarning), ShouldEqual, Light.Warning)
			So(BaseColor(Light, ToneDanger), ShouldEqual, Light.Negative)
		})

		Convey("Every base color parses", func() {
			for _, tone := range AllTones() {
				So(color.Parse(BaseColor(Dark, tone)).IsPresent(), ShouldBeTrue)
			}
		})
	})
}
