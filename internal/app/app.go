// Package app holds the startup shared by the demo mains: flags, config and
// logging.
package app

import (
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/leterax/learngl/pkg/config"
)

// Flags are the command line options every demo accepts
type Flags struct {
	ConfigPath string
	Width      int
	Height     int
	LogLevel   string
	NoVSync    bool
}

// ParseFlags parses args (without the program name) into Flags.
func ParseFlags(name string, args []string) (Flags, error) {
	var f Flags

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&f.ConfigPath, "config", "", "YAML config file layered over the defaults")
	fs.IntVar(&f.Width, "width", 0, "Window width (0 keeps the configured width)")
	fs.IntVar(&f.Height, "height", 0, "Window height (0 keeps the configured height)")
	fs.StringVar(&f.LogLevel, "log-level", "", "Log level: debug, info, warn, error")
	fs.BoolVar(&f.NoVSync, "novsync", false, "Disable vsync")

	if err := fs.Parse(args); err != nil {
		return Flags{}, err
	}
	return f, nil
}

// LoadConfig loads the configuration named by f and applies the flag
// overrides on top of it.
func LoadConfig(f Flags, title string) (*config.Config, error) {
	cfg, err := config.Load(f.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if title != "" {
		cfg.Window.Title = title
	}
	if f.Width > 0 {
		cfg.Window.Width = f.Width
	}
	if f.Height > 0 {
		cfg.Window.Height = f.Height
	}
	if f.LogLevel != "" {
		cfg.Log.Level = f.LogLevel
	}
	if f.NoVSync {
		cfg.Window.VSync = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SetupLogging installs a text slog handler writing to w at the configured
// level as the default logger.
func SetupLogging(w io.Writer, cfg *config.Config) error {
	level, err := config.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
	return nil
}

// Init parses flags, loads the config and installs logging.
func Init(name, title string, args []string, logOut io.Writer) (*config.Config, error) {
	f, err := ParseFlags(name, args)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadConfig(f, title)
	if err != nil {
		return nil, err
	}

	if err := SetupLogging(logOut, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
