package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, 400*time.Millisecond, cfg.Session.NotesDelay)
	assert.Equal(t, 256, cfg.Session.WriteBuffer)
	assert.Equal(t, 10*time.Second, cfg.Session.FetchTimeout)
	assert.Equal(t, 30*time.Minute, cfg.Session.IdleTimeout)
	assert.False(t, cfg.Cache.InMemory)
	assert.Equal(t, filepath.Join(xdg.DataHome, "reachpoint", "cache"), cfg.Cache.Path())
}

func TestLoadFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("SESSION_NOTES_DELAY", "1s")
	t.Setenv("SESSION_IDLE_TIMEOUT", "0s")
	t.Setenv("CACHE_DIR", "/tmp/reachpoint")
	t.Setenv("PSQL_LOCAL_ONLY", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Equal(t, time.Second, cfg.Session.NotesDelay)
	assert.Zero(t, cfg.Session.IdleTimeout)
	assert.Equal(t, "/tmp/reachpoint", cfg.Cache.Path())
	assert.True(t, cfg.Psql.LocalOnly)
}
