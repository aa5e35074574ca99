package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/leterax/learngl/pkg/camera"
)

var namedKeys = map[string]glfw.Key{
	"SPACE":         glfw.KeySpace,
	"UP":            glfw.KeyUp,
	"DOWN":          glfw.KeyDown,
	"LEFT":          glfw.KeyLeft,
	"RIGHT":         glfw.KeyRight,
	"LEFT_SHIFT":    glfw.KeyLeftShift,
	"RIGHT_SHIFT":   glfw.KeyRightShift,
	"LEFT_CONTROL":  glfw.KeyLeftControl,
	"RIGHT_CONTROL": glfw.KeyRightControl,
}

// ParseKey resolves a key name: a single letter or digit, or one of the
// names in namedKeys ("UP", "SPACE", ...). Case is ignored.
func ParseKey(name string) (glfw.Key, error) {
	name = strings.ToUpper(strings.TrimSpace(name))

	if len(name) == 1 {
		switch c := name[0]; {
		case c >= 'A' && c <= 'Z':
			return glfw.KeyA + glfw.Key(c-'A'), nil
		case c >= '0' && c <= '9':
			return glfw.Key0 + glfw.Key(c-'0'), nil
		}
	}

	if key, ok := namedKeys[name]; ok {
		return key, nil
	}
	return glfw.KeyUnknown, fmt.Errorf("unknown key %q", name)
}

// binding maps a held key to a camera movement
type binding struct {
	key       glfw.Key
	direction camera.Direction
}

// parseBindings turns config bindings (direction name -> key name) into a
// list sorted by direction so polling order is stable.
func parseBindings(bindings map[string]string) ([]binding, error) {
	out := make([]binding, 0, len(bindings))
	for dirName, keyName := range bindings {
		dir, err := camera.ParseDirection(dirName)
		if err != nil {
			return nil, err
		}
		key, err := ParseKey(keyName)
		if err != nil {
			return nil, fmt.Errorf("binding %s: %w", dirName, err)
		}
		out = append(out, binding{key: key, direction: dir})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].direction < out[j].direction })
	return out, nil
}
