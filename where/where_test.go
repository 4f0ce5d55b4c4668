package where

import (
	"os"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/swatch-cli/swatch/filesystem"
)

func TestWhere(t *testing.T) {
	filesystem.SetMemMapFs()
	defer filesystem.SetOsFs()

	Convey("Where", t, func() {
		Convey("Config honors the override variable", func() {
			So(os.Setenv(EnvConfigPath, "/custom/config"), ShouldBeNil)
			defer os.Unsetenv(EnvConfigPath)

			So(Config(), ShouldEqual, "/custom/config")
		})

		Convey("Derived paths nest under their parents", func() {
			So(os.Setenv(EnvConfigPath, "/custom/config"), ShouldBeNil)
			defer os.Unsetenv(EnvConfigPath)

			So(strings.HasPrefix(Logs(), Config()), ShouldBeTrue)
			So(strings.HasPrefix(Palettes(), Config()), ShouldBeTrue)
			So(strings.HasPrefix(PaletteRegistry(), Cache()), ShouldBeTrue)
		})
	})
}
