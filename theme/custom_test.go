package theme

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/swatch-cli/swatch/filesystem"
	"github.com/swatch-cli/swatch/key"
	"github.com/swatch-cli/swatch/where"
)

func TestCustoms(t *testing.T) {
	filesystem.SetMemMapFs()
	defer filesystem.SetOsFs()

	viper.Set(key.PaletteCustomCache, false)
	defer viper.Set(key.PaletteCustomCache, true)

	_ = os.Setenv(where.EnvConfigPath, "/swatch-test/config")
	defer os.Unsetenv(where.EnvConfigPath)

	write := func(name, contents string) {
		path := filepath.Join(where.Palettes(), name)
		So(filesystem.API().WriteFile(path, []byte(contents), 0644), ShouldBeNil)
	}

	Convey("Customs", t, func() {
		Convey("Loads valid palette files by stem", func() {
			write("ocean.json", `{
				"background": "#021A2E", "card": "#06283D", "border": "#0A3A55",
				"textPrimary": "#DFF6FF", "textSecondary": "#9FC5DB",
				"tintPrimary": "#47B5FF", "tintSoftBg": "#0E4A6B",
				"positive": "#2DD4BF", "negative": "#FB7185", "warning": "#FACC15"
			}`)

			customs, err := Customs()
			So(err, ShouldBeNil)
			So(customs, ShouldContainKey, "ocean")
			So(customs["ocean"].TintPrimary, ShouldEqual, "#47B5FF")
		})

		Convey("Skips files that fail validation", func() {
			write("broken.json", `{"background": "definitely-not-a-color"}`)

			customs, err := Customs()
			So(err, ShouldBeNil)
			So(customs, ShouldNotContainKey, "broken")
		})

		Convey("Get falls through to the custom registry", func() {
			write("ocean.json", `{
				"background": "#021A2E", "card": "#06283D", "border": "#0A3A55",
				"textPrimary": "#DFF6FF", "textSecondary": "#9FC5DB",
				"tintPrimary": "#47B5FF", "tintSoftBg": "#0E4A6B",
				"positive": "#2DD4BF", "negative": "#FB7185", "warning": "#FACC15"
			}`)

			_, ok := Get("ocean")
			So(ok, ShouldBeTrue)

			_, ok = Get("nonexistent")
			So(ok, ShouldBeFalse)
		})
	})
}
