package inline

import (
	"bytes"
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/samber/mo"
	"github.com/swatch-cli/swatch/theme"
	"github.com/swatch-cli/swatch/widget"
)

func TestParseKind(t *testing.T) {
	Convey("ParseKind", t, func() {
		for _, kind := range AllKinds() {
			parsed, err := ParseKind(string(kind))
			So(err, ShouldBeNil)
			So(parsed, ShouldEqual, kind)
		}

		_, err := ParseKind("carousel")
		So(err, ShouldNotBeNil)
	})
}

func TestRunJson(t *testing.T) {
	Convey("Run with JSON output", t, func() {
		Convey("Buttons enumerate variant x size x state", func() {
			var buf bytes.Buffer
			err := Run(&Options{
				Out:         &buf,
				PaletteName: "light",
				Palette:     theme.Light,
				Kind:        KindButton,
				Json:        true,
			})
			So(err, ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Palette, ShouldEqual, "light")
			// 4 variants x 3 sizes x 2 states
			So(len(output.Entries), ShouldEqual, 24)
			So(output.Entries[0].Style, ShouldNotBeNil)
			So(output.Entries[0].Badge, ShouldBeNil)
		})

		Convey("A fixed state halves the enumeration", func() {
			var buf bytes.Buffer
			err := Run(&Options{
				Out:      &buf,
				Palette:  theme.Dark,
				Kind:     KindButton,
				Disabled: mo.Some(false),
				Json:     true,
			})
			So(err, ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(len(output.Entries), ShouldEqual, 12)
		})

		Convey("Explicit slices narrow the option space", func() {
			var buf bytes.Buffer
			err := Run(&Options{
				Out:      &buf,
				Palette:  theme.Light,
				Kind:     KindChip,
				Tones:    []theme.Tone{theme.ToneSuccess},
				Sizes:    []widget.Size{widget.SizeMedium},
				Selected: mo.Some(true),
				Json:     true,
			})
			So(err, ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(len(output.Entries), ShouldEqual, 1)
			So(output.Entries[0].Tone, ShouldEqual, "success")
			So(*output.Entries[0].Selected, ShouldBeTrue)
		})

		Convey("Badges carry badge visuals instead of style descriptors", func() {
			var buf bytes.Buffer
			err := Run(&Options{
				Out:     &buf,
				Palette: theme.Light,
				Kind:    KindBadge,
				Json:    true,
			})
			So(err, ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			// 5 tones x 2 states
			So(len(output.Entries), ShouldEqual, 10)
			for _, entry := range output.Entries {
				So(entry.Badge, ShouldNotBeNil)
				So(entry.Style, ShouldBeNil)
			}
		})
	})
}

func TestRunSwatches(t *testing.T) {
	Convey("Run with swatch output", t, func() {
		var buf bytes.Buffer
		err := Run(&Options{
			Out:     &buf,
			Palette: theme.Light,
			Kind:    KindChip,
			Tones:   []theme.Tone{theme.ToneAccent},
		})
		So(err, ShouldBeNil)
		So(buf.String(), ShouldContainSubstring, "chip accent")
	})
}
