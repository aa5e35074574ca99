package app

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leterax/learngl/pkg/config"
)

func TestParseFlags(t *testing.T) {
	f, err := ParseFlags("cubes", []string{"-width", "1024", "-log-level", "debug", "-novsync"})
	require.NoError(t, err)

	assert.Equal(t, 1024, f.Width)
	assert.Zero(t, f.Height)
	assert.Equal(t, "debug", f.LogLevel)
	assert.True(t, f.NoVSync)

	_, err = ParseFlags("cubes", []string{"-bogus"})
	assert.Error(t, err)
}

func TestLoadConfigOverrides(t *testing.T) {
	cfg, err := LoadConfig(Flags{Width: 1280, Height: 720, NoVSync: true}, "Cube Field")
	require.NoError(t, err)

	assert.Equal(t, "Cube Field", cfg.Window.Title)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.False(t, cfg.Window.VSync)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte("camera:\n  speed: 7\n"), 0o644))

	cfg, err := LoadConfig(Flags{ConfigPath: path}, "")
	require.NoError(t, err)
	assert.Equal(t, float32(7), cfg.Camera.Speed)
	assert.Equal(t, "LearnGL", cfg.Window.Title)
}

func TestLoadConfigRejectsBadOverride(t *testing.T) {
	_, err := LoadConfig(Flags{LogLevel: "loud"}, "")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestInitInstallsLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	cfg, err := Init("quad", "Quad", []string{"-log-level", "warn"}, &buf)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)

	slog.Info("hidden")
	slog.Warn("shown", "demo", "quad")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "demo=quad")
}
