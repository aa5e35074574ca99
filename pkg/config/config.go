// Package config provides configuration loading for the demo programs.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"github.com/leterax/learngl/pkg/camera"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all demo configuration.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Camera CameraConfig `yaml:"camera"`
	Input  InputConfig  `yaml:"input"`
	Assets AssetsConfig `yaml:"assets"`
	Log    LogConfig    `yaml:"log"`
}

// WindowConfig holds window and GL context settings.
type WindowConfig struct {
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Title      string     `yaml:"title"`
	VSync      bool       `yaml:"vsync"`
	GLMajor    int        `yaml:"gl_major"`
	GLMinor    int        `yaml:"gl_minor"`
	ClearColor mgl32.Vec4 `yaml:"clear_color"`
}

// CameraConfig holds the initial camera state and its limits.
type CameraConfig struct {
	Position         mgl32.Vec3 `yaml:"position"`
	Front            mgl32.Vec3 `yaml:"front"`
	Up               mgl32.Vec3 `yaml:"up"`
	Yaw              float32    `yaml:"yaw"`   // degrees
	Pitch            float32    `yaml:"pitch"` // degrees
	Speed            float32    `yaml:"speed"` // world units per second
	Sensitivity      float32    `yaml:"sensitivity"`
	FOVMin           float32    `yaml:"fov_min"`
	FOVMax           float32    `yaml:"fov_max"`
	InvertHorizontal bool       `yaml:"invert_horizontal"`
	InvertVertical   bool       `yaml:"invert_vertical"`
	ConstrainPitch   bool       `yaml:"constrain_pitch"`
	Near             float32    `yaml:"near"`
	Far              float32    `yaml:"far"`
}

// InputConfig holds mouse capture and movement key bindings.
type InputConfig struct {
	CaptureMouse bool              `yaml:"capture_mouse"`
	Bindings     map[string]string `yaml:"bindings"` // direction name -> key name
}

// AssetsConfig holds shader and texture locations.
type AssetsConfig struct {
	ShaderDir    string   `yaml:"shader_dir"`
	Textures     []string `yaml:"textures"`
	FlipTextures bool     `yaml:"flip_textures"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	var data []byte
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse decodes data over the embedded defaults without validating.
// Bindings are merged by direction, so a user entry replaces the default
// key for that direction whatever its spelling.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}
	if len(data) > 0 {
		// Unmarshal into same struct - only overwrites fields present in data.
		// yaml.v3 would add to the defaults map in place, so decode bindings
		// into a fresh one.
		defaults := cfg.Input.Bindings
		cfg.Input.Bindings = nil
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
		cfg.Input.Bindings = mergeBindings(defaults, cfg.Input.Bindings)
	}
	return cfg, nil
}

// mergeBindings overlays user on defaults, keyed by canonical direction
// name. Unknown directions keep their spelling for Validate to report.
func mergeBindings(defaults, user map[string]string) map[string]string {
	out := make(map[string]string, len(defaults)+len(user))
	for _, m := range []map[string]string{defaults, user} {
		for dir, key := range m {
			out[bindingName(dir)] = key
		}
	}
	return out
}

func bindingName(dir string) string {
	if d, err := camera.ParseDirection(dir); err == nil {
		return d.String()
	}
	return dir
}

// Validate checks ranges that would otherwise produce a broken camera or
// projection.
func (c *Config) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	w := c.Window
	if w.Width <= 0 || w.Height <= 0 {
		fail("window size %dx%d must be positive", w.Width, w.Height)
	}
	if w.GLMajor < 3 || (w.GLMajor == 3 && w.GLMinor < 3) {
		fail("OpenGL %d.%d is older than 3.3", w.GLMajor, w.GLMinor)
	}

	cam := c.Camera
	if cam.FOVMin <= 0 || cam.FOVMax >= 180 {
		fail("fov range [%v, %v] must lie within (0, 180)", cam.FOVMin, cam.FOVMax)
	}
	if cam.FOVMin > cam.FOVMax {
		fail("fov_min %v is greater than fov_max %v", cam.FOVMin, cam.FOVMax)
	}
	if cam.Speed < 0 {
		fail("camera speed %v is negative", cam.Speed)
	}
	if cam.Sensitivity < 0 {
		fail("mouse sensitivity %v is negative", cam.Sensitivity)
	}
	if cam.Near <= 0 || cam.Near >= cam.Far {
		fail("clip planes near=%v far=%v must satisfy 0 < near < far", cam.Near, cam.Far)
	}
	if cam.Up.Len() == 0 {
		fail("camera up vector is zero")
	}

	bound := make(map[camera.Direction]string, len(c.Input.Bindings))
	for dir, key := range c.Input.Bindings {
		d, err := camera.ParseDirection(dir)
		if err != nil {
			fail("binding %q: %v", dir, err)
		} else if prev, ok := bound[d]; ok {
			fail("direction %s bound by both %q and %q", d, prev, dir)
		} else {
			bound[d] = dir
		}
		if strings.TrimSpace(key) == "" {
			fail("binding %q has no key", dir)
		}
	}

	if _, err := ParseLevel(c.Log.Level); err != nil {
		fail("%v", err)
	}

	return errors.Join(errs...)
}

// NewCamera builds a camera from the configured initial state.
func (c CameraConfig) NewCamera() *camera.Camera {
	cam := camera.New(c.Position, c.Front, c.Up, c.Yaw, c.Pitch)
	cam.SetSpeed(c.Speed)
	cam.SetMouseSensitivity(c.Sensitivity)
	cam.SetFieldOfViewRange(c.FOVMin, c.FOVMax)
	cam.SetFieldOfView(c.FOVMax)
	cam.SetInvertHorizontal(c.InvertHorizontal)
	cam.SetInvertVertical(c.InvertVertical)
	return cam
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", name, err)
	}
	return level, nil
}
