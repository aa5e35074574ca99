package render

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Key constants for keyboard input
const (
	KeyEscape  = glfw.KeyEscape
	KeyCapture = glfw.KeyC
	KeyUp      = glfw.KeyUp
	KeyDown    = glfw.KeyDown
)

// Press is the state of a held key
const Press = glfw.Press

// Projection defaults used when a renderer is built without a config
const (
	DefaultNear = 0.1
	DefaultFar  = 100.0
)
