package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "crawl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, "map_width: 80\nmonsters: 7\n")

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 80, cfg.MapWidth)
	assert.Equal(t, 7, cfg.Monsters)
	// Untouched fields keep their defaults.
	assert.Equal(t, 20, cfg.MapHeight)
	assert.Equal(t, "crawl", cfg.Title)
}

func TestLoadConfigRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "map_width: [not a number\n")

	_, err := loadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{"zero width", "map_width: 0\n"},
		{"negative height", "map_height: -4\n"},
		{"negative monsters", "monsters: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.contents)
			_, err := loadConfig(path)
			assert.Error(t, err)
		})
	}
}
