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
	cfg, err := app.Init("quad", "Textured Quad", os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	cfg.Input.CaptureMouse = false

	if err := render.RunScene(cfg, examples.NewQuadScene(cfg.Assets, 0.2)); err != nil {
		log.Fatalf("Quad demo failed: %v", err)
	}
}
