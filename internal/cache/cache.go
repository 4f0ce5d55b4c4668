// Package cache prunes expired entries from the application cache directory.
package cache

import (
	"os"
	"time"

	"github.com/spf13/afero"

	"github.com/swatch-cli/swatch/filesystem"
	"github.com/swatch-cli/swatch/log"
	"github.com/swatch-cli/swatch/where"
)

// TTL is the lifetime of a cache entry before the collector removes it.
const TTL = 7 * 24 * time.Hour

// CollectGarbage walks the cache directory and removes entries whose
// modification time exceeds the TTL. A stale entry that survives an error
// is removed on a later run.
func CollectGarbage() {
	err := afero.Walk(filesystem.API(), where.Cache(), func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}

		if time.Since(info.ModTime()) > TTL {
			if removeErr := filesystem.API().Remove(path); removeErr != nil {
				log.Warnf("failed to remove expired cache entry %s: %s", path, removeErr)
			}
		}

		return nil
	})

	if err != nil {
		log.Warnf("cache garbage collection failed: %s", err)
	}
}
