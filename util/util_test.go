package util

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestClamp(t *testing.T) {
	Convey("Clamp", t, func() {
		So(Clamp(0.5, 0.0, 1.0), ShouldEqual, 0.5)
		So(Clamp(-0.3, 0.0, 1.0), ShouldEqual, 0.0)
		So(Clamp(2.0, 0.0, 1.0), ShouldEqual, 1.0)
		So(Clamp(7, 1, 5), ShouldEqual, 5)
	})
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "palette", "palettes"), ShouldEqual, "1 palette")
		So(Quantify(2, "palette", "palettes"), ShouldEqual, "2 palettes")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("neutral"), ShouldEqual, "Neutral")
		So(Capitalize(""), ShouldEqual, "")
	})
}
