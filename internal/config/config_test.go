package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "data/sets", cfg.DataDir)
	assert.Equal(t, 10*time.Second, cfg.FetchTimeout())
	assert.Equal(t, 4, cfg.MaxRefDepth)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pokecat.toml")
	body := `
port = "9090"
data_dir = "/srv/sets"
source_url = "https://cards.example.com"
fetch_timeout_seconds = 3
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "/srv/sets", cfg.DataDir)
	assert.Equal(t, "https://cards.example.com", cfg.SourceURL)
	assert.Equal(t, 3*time.Second, cfg.FetchTimeout())
	// Unset keys keep their defaults.
	assert.Equal(t, "ja", cfg.ImageLocale)
}

func TestLoadPortEnvOverride(t *testing.T) {
	t.Setenv("PORT", "3000")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.Port)
}
