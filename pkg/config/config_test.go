package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.Equal(t, mgl32.Vec3{0, 0, 3}, cfg.Camera.Position)
	assert.Equal(t, float32(-90), cfg.Camera.Yaw)
	assert.Equal(t, float32(2.5), cfg.Camera.Speed)
	assert.Equal(t, "W", cfg.Input.Bindings["forward"])
	assert.Len(t, cfg.Assets.Textures, 2)
}

func TestLoadMergesUserFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")
	data := []byte(`
window:
  title: "Cubes"
camera:
  position: [0, 0, 5]
  invert_vertical: true
input:
  bindings:
    forward: UP
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Cubes", cfg.Window.Title)
	assert.Equal(t, 800, cfg.Window.Width, "untouched fields keep defaults")
	assert.Equal(t, mgl32.Vec3{0, 0, 5}, cfg.Camera.Position)
	assert.True(t, cfg.Camera.InvertVertical)
	assert.Equal(t, "UP", cfg.Input.Bindings["forward"])
	assert.Equal(t, "S", cfg.Input.Bindings["backward"])
}

func TestParseBindingReplacesDefaultDirection(t *testing.T) {
	cfg, err := Parse([]byte("input:\n  bindings:\n    Forward: UP\n"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, map[string]string{
		"forward":  "UP",
		"backward": "S",
		"left":     "A",
		"right":    "D",
	}, cfg.Input.Bindings)
}

func TestValidateRejectsDirectionBoundTwice(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)

	cfg.Input.Bindings["FORWARD"] = "UP"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseRejectsBadVector(t *testing.T) {
	_, err := Parse([]byte("camera:\n  position: [1, 2]\n"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero width", "window:\n  width: 0\n"},
		{"old gl", "window:\n  gl_major: 2\n  gl_minor: 1\n"},
		{"fov min", "camera:\n  fov_min: 0\n"},
		{"fov order", "camera:\n  fov_min: 50\n  fov_max: 40\n"},
		{"fov max", "camera:\n  fov_max: 180\n"},
		{"speed", "camera:\n  speed: -1\n"},
		{"sensitivity", "camera:\n  sensitivity: -0.1\n"},
		{"clip planes", "camera:\n  near: 10\n  far: 1\n"},
		{"zero up", "camera:\n  up: [0, 0, 0]\n"},
		{"direction", "input:\n  bindings:\n    jump: SPACE\n"},
		{"empty key", "input:\n  bindings:\n    forward: \"\"\n"},
		{"log level", "log:\n  level: chatty\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestNewCamera(t *testing.T) {
	cfg, err := Parse([]byte("camera:\n  fov_min: 10\n  fov_max: 60\n  speed: 4\n"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	cam := cfg.Camera.NewCamera()

	assert.Equal(t, float32(60), cam.FieldOfView())
	assert.Equal(t, float32(4), cam.Speed())
	assert.Equal(t, cfg.Camera.Position, cam.Position())

	cam.ProcessMouseScroll(1000)
	assert.Equal(t, float32(10), cam.FieldOfView())
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	_, err = ParseLevel("")
	assert.Error(t, err)
}
