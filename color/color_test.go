package color

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParse(t *testing.T) {
	Convey("Parse", t, func() {
		Convey("6-digit hex", func() {
			c := Parse("#0F766E").MustGet()
			So(c, ShouldResemble, RGBA{R: 15, G: 118, B: 110, A: 1})
		})

		Convey("3-digit shorthand expands by digit duplication", func() {
			c := Parse("#abc").MustGet()
			So(c, ShouldResemble, RGBA{R: 0xAA, G: 0xBB, B: 0xCC, A: 1})
		})

		Convey("Leading hash is optional and case is ignored", func() {
			So(Parse("0f766e").MustGet(), ShouldResemble, Parse("#0F766E").MustGet())
		})

		Convey("Functional rgb and rgba notation", func() {
			So(Parse("rgb(15, 118, 110)").MustGet(), ShouldResemble, RGBA{R: 15, G: 118, B: 110, A: 1})
			So(Parse("rgba(15, 118, 110, 0.4)").MustGet(), ShouldResemble, RGBA{R: 15, G: 118, B: 110, A: 0.4})
		})

		Convey("Out-of-range channels are rejected", func() {
			So(Parse("rgb(300, 0, 0)").IsAbsent(), ShouldBeTrue)
			So(Parse("rgb(-1, 0, 0)").IsAbsent(), ShouldBeTrue)
		})

		Convey("Garbage yields None instead of an error", func() {
			So(Parse("").IsAbsent(), ShouldBeTrue)
			So(Parse("not-a-color").IsAbsent(), ShouldBeTrue)
			So(Parse("#12345").IsAbsent(), ShouldBeTrue)
			So(Parse("rgba(1,2)").IsAbsent(), ShouldBeTrue)
		})
	})
}

func TestWithAlpha(t *testing.T) {
	Convey("WithAlpha", t, func() {
		Convey("Preserves channels and carries the exact alpha", func() {
			for _, hex := range []string{"#0F766E", "#FFFFFF", "#000000", "#abc"} {
				out := WithAlpha(hex, 0.25)
				parsed := Parse(out).MustGet()

				original := Parse(hex).MustGet()
				So(parsed.R, ShouldEqual, original.R)
				So(parsed.G, ShouldEqual, original.G)
				So(parsed.B, ShouldEqual, original.B)
				So(parsed.A, ShouldEqual, 0.25)
			}
		})

		Convey("Replaces alpha on rgba input", func() {
			So(WithAlpha("rgba(10, 20, 30, 0.9)", 0.1), ShouldEqual, "rgba(10, 20, 30, 0.1)")
			So(WithAlpha("rgb(10, 20, 30)", 0.5), ShouldEqual, "rgba(10, 20, 30, 0.5)")
		})

		Convey("Clamps alpha outside [0, 1]", func() {
			So(WithAlpha("#336699", -0.3), ShouldEqual, WithAlpha("#336699", 0))
			So(WithAlpha("#336699", 2.0), ShouldEqual, WithAlpha("#336699", 1))
		})

		Convey("Returns unparsable input unchanged", func() {
			So(WithAlpha("not-a-color", 0.5), ShouldEqual, "not-a-color")
		})
	})
}

func TestRelativeLuminance(t *testing.T) {
	Convey("RelativeLuminance", t, func() {
		Convey("Extremes", func() {
			So(RelativeLuminance("#FFFFFF").MustGet(), ShouldAlmostEqual, 1.0, 1e-9)
			So(RelativeLuminance("#000000").MustGet(), ShouldAlmostEqual, 0.0, 1e-9)
		})

		Convey("Weighted combination for a mid color", func() {
			// 0.2126*15/255 + 0.7152*118/255 + 0.0722*110/255
			So(RelativeLuminance("#0F766E").MustGet(), ShouldAlmostEqual, 0.375, 0.01)
		})

		Convey("Defined only for 6-digit hex", func() {
			So(RelativeLuminance("#abc").IsAbsent(), ShouldBeTrue)
			So(RelativeLuminance("rgba(255, 255, 255, 1)").IsAbsent(), ShouldBeTrue)
			So(RelativeLuminance("bogus").IsAbsent(), ShouldBeTrue)
		})
	})
}

func TestChooseReadableText(t *testing.T) {
	Convey("ChooseReadableText", t, func() {
		Convey("Bright backgrounds take the dark default", func() {
			So(ChooseReadableText("#FFFFFF"), ShouldEqual, DefaultDarkText)
		})

		Convey("Dark backgrounds take the light default", func() {
			So(ChooseReadableText("#000000"), ShouldEqual, DefaultLightText)
			So(ChooseReadableText("#0F766E"), ShouldEqual, DefaultLightText)
		})

		Convey("The mid-luminance boundary is not greater than 0.5", func() {
			// 128/255 ~ 0.502 > 0.5 -> dark; 127/255 ~ 0.498 -> light.
			// The comparison is strictly-greater, so anything at or below
			// the boundary resolves to the light candidate.
			So(ChooseReadableText("#808080"), ShouldEqual, DefaultDarkText)
			So(ChooseReadableText("#7F7F7F"), ShouldEqual, DefaultLightText)
		})

		Convey("Unparsable backgrounds take the safe light default", func() {
			So(ChooseReadableText("transparent"), ShouldEqual, DefaultLightText)
			So(ChooseReadableText("rgba(0, 0, 0, 1)"), ShouldEqual, DefaultLightText)
		})

		Convey("Custom candidates override the defaults", func() {
			So(ChooseReadableText("#FFFFFF", "#EEEEEE", "#111111"), ShouldEqual, "#111111")
			So(ChooseReadableText("#000000", "#EEEEEE", "#111111"), ShouldEqual, "#EEEEEE")
		})
	})
}

func TestHSLRoundTrip(t *testing.T) {
	Convey("HSL round trip", t, func() {
		for _, hex := range []string{"#0F766E", "#F43F5E", "#16A34A", "#D97706", "#0B1220"} {
			c := Parse(hex).MustGet()
			h, s, l := c.HSL()
			back := FromHSL(h, s, l)

			So(back.R, ShouldAlmostEqual, c.R, 1)
			So(back.G, ShouldAlmostEqual, c.G, 1)
			So(back.B, ShouldAlmostEqual, c.B, 1)
		}
	})
}
