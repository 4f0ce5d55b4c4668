package theme

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/metafates/gache"
	"github.com/spf13/viper"
	"github.com/swatch-cli/swatch/filesystem"
	"github.com/swatch-cli/swatch/key"
	"github.com/swatch-cli/swatch/log"
	"github.com/swatch-cli/swatch/where"
)

// registryCacher persists the parsed custom-palette registry so repeated CLI
// invocations skip re-reading every palette file.
var registryCacher = gache.New[map[string]Palette](
	&gache.Options{
		Path:       where.PaletteRegistry(),
		Lifetime:   time.Hour * 24,
		FileSystem: &filesystem.GacheFs{},
	},
)

// Customs loads the registry of user-defined palettes from JSON files in the
// palettes directory. Each file contributes one palette named after its stem.
// Invalid files are skipped with a log entry rather than failing the listing.
func Customs() (map[string]Palette, error) {
	useCache := viper.GetBool(key.PaletteCustomCache)

	if useCache {
		cached, expired, err := registryCacher.Get()
		if err == nil && !expired && cached != nil {
			return cached, nil
		}
	}

	dir := where.Palettes()
	entries, err := filesystem.API().ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read palettes directory: %w", err)
	}

	palettes := make(map[string]Palette)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		palette, err := loadPalette(path)
		if err != nil {
			log.Warnf("skipping palette %s: %s", entry.Name(), err)
			continue
		}

		name := strings.TrimSuffix(entry.Name(), ".json")
		palettes[name] = palette
	}

	if useCache {
		_ = registryCacher.Set(palettes)
	}

	return palettes, nil
}

// loadPalette reads and validates a single palette file.
func loadPalette(path string) (Palette, error) {
	contents, err := filesystem.API().ReadFile(path)
	if err != nil {
		return Palette{}, fmt.Errorf("read palette: %w", err)
	}

	var palette Palette
	if err := json.Unmarshal(contents, &palette); err != nil {
		return Palette{}, fmt.Errorf("decode palette: %w", err)
	}

	if err := palette.Validate(); err != nil {
		return Palette{}, fmt.Errorf("validate palette: %w", err)
	}

	return palette, nil
}

// InvalidateCustoms drops the cached custom-palette registry, forcing the
// next Customs call to re-read the palette files.
func InvalidateCustoms() error {
	return registryCacher.Set(nil)
}
