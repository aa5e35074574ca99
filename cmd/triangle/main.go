package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"runtime"

	"github.com/leterax/learngl/internal/app"
	"github.com/leterax/learngl/pkg/render"
	"github.com/leterax/learngl/pkg/render/examples"
)

func init() {
	// This is needed to ensure that OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

func main() {
	cfg, err := app.Init("triangle", "Draw Triangle", os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	// A flat 2D demo has no use for mouse look.
	cfg.Input.CaptureMouse = false

	if err := render.RunScene(cfg, examples.NewTriangleScene(cfg.Assets)); err != nil {
		log.Fatalf("Triangle demo failed: %v", err)
	}
}
