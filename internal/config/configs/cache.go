package configs

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Cache configures the local progress cache. Progress survives restarts
// when it lives on disk; InMemory keeps it for the life of the process
// only.
type Cache struct {
	// Dir is the badger directory. Empty resolves to DefaultCacheDir.
	Dir      string `env:"DIR"`
	InMemory bool   `env:"IN_MEMORY" envDefault:"false"`
}

// DefaultCacheDir returns the per-user data directory for the cache.
func DefaultCacheDir() string {
	return filepath.Join(xdg.DataHome, "reachpoint", "cache")
}

// Path returns Dir, or DefaultCacheDir when Dir is empty.
func (c Cache) Path() string {
	if c.Dir != "" {
		return c.Dir
	}
	return DefaultCacheDir()
}
