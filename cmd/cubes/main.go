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
	cfg, err := app.Init("cubes", "Cube Field", os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	if err := render.RunScene(cfg, examples.NewCubesScene(cfg.Assets, 0.2)); err != nil {
		log.Fatalf("Cube demo failed: %v", err)
	}
}
