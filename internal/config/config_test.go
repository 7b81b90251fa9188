package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "arts.sqlite", cfg.DBPath)
	assert.True(t, cfg.SeedArtists)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 600, cfg.CanvasWidth)
	assert.Equal(t, 400, cfg.CanvasHeight)
	assert.Equal(t, "art.png", cfg.SavePath)
	assert.Equal(t, 60, cfg.TargetFPS)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ARTSTUDIO_DB_PATH", "  gallery.db ")
	t.Setenv("ARTSTUDIO_SEED_ARTISTS", "false")
	t.Setenv("ARTSTUDIO_CANVAS_WIDTH", "800")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "gallery.db", cfg.DBPath)
	assert.False(t, cfg.SeedArtists)
	assert.Equal(t, 800, cfg.CanvasWidth)
}

func TestLoad_DotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ARTSTUDIO_SAVE_PATH=sketch.jpg\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("ARTSTUDIO_SAVE_PATH") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sketch.jpg", cfg.SavePath)
}

func TestLoad_MalformedDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ARTSTUDIO_SAVE_PATH=\"unterminated\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load .env")
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"blank db path", "ARTSTUDIO_DB_PATH", "   "},
		{"zero canvas", "ARTSTUDIO_CANVAS_HEIGHT", "0"},
		{"negative window", "ARTSTUDIO_WINDOW_WIDTH", "-1"},
		{"not a number", "ARTSTUDIO_TARGET_FPS", "fast"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			assert.Error(t, err)
		})
	}
}
