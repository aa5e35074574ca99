//go:build cgo

package render

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leterax/learngl/pkg/camera"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		name string
		want glfw.Key
	}{
		{"W", glfw.KeyW},
		{"a", glfw.KeyA},
		{" z ", glfw.KeyZ},
		{"0", glfw.Key0},
		{"9", glfw.Key9},
		{"up", glfw.KeyUp},
		{"SPACE", glfw.KeySpace},
		{"left_shift", glfw.KeyLeftShift},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := ParseKey(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, key)
		})
	}
}

func TestParseKeyUnknown(t *testing.T) {
	for _, name := range []string{"", "F13", "!", "WW"} {
		key, err := ParseKey(name)
		assert.Error(t, err, name)
		assert.Equal(t, glfw.KeyUnknown, key)
	}
}

func TestParseBindings(t *testing.T) {
	got, err := parseBindings(map[string]string{
		"right":    "D",
		"Forward":  "up",
		"backward": "S",
		"left":     "A",
	})
	require.NoError(t, err)

	assert.Equal(t, []binding{
		{key: glfw.KeyUp, direction: camera.Forward},
		{key: glfw.KeyS, direction: camera.Backward},
		{key: glfw.KeyA, direction: camera.Left},
		{key: glfw.KeyD, direction: camera.Right},
	}, got)
}

func TestParseBindingsErrors(t *testing.T) {
	_, err := parseBindings(map[string]string{"jump": "SPACE"})
	assert.ErrorIs(t, err, camera.ErrUnknownDirection)

	_, err = parseBindings(map[string]string{"forward": "F13"})
	assert.ErrorContains(t, err, "binding forward")
}
