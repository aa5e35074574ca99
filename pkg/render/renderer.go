// Package render drives the demo render loop: it owns the window, the fly
// camera and the per-frame input state, and hands each frame to a Scene.
package render

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/learngl/internal/openglhelper"
	"github.com/leterax/learngl/pkg/camera"
	"github.com/leterax/learngl/pkg/config"
	"github.com/leterax/learngl/pkg/input"
)

// Scene is one demo: it creates its GPU resources in Init, animates in
// Update and issues draw calls in Draw. Delete releases what Init created.
type Scene interface {
	Init(f *Frame) error
	Update(f *Frame)
	Draw(f *Frame)
	Delete()
}

// Frame is the per-frame view of the renderer handed to a Scene.
type Frame struct {
	Window *openglhelper.Window
	Camera *camera.Camera

	DeltaTime float32 // seconds since the previous frame
	Elapsed   float32 // seconds since the loop started

	View       mgl32.Mat4
	Projection mgl32.Mat4
}

// KeyPressed reports whether key is held down this frame.
func (f *Frame) KeyPressed(key glfw.Key) bool {
	return f.Window.GetKeyState(key) == Press
}

// Renderer handles the render loop and routes window input to the camera
type Renderer struct {
	window *openglhelper.Window
	camera *camera.Camera
	input  *input.State
	clock  input.Clock

	bindings       []binding
	constrainPitch bool
	clearColor     mgl32.Vec4
	near, far      float32

	frame Frame
}

// NewRenderer creates the window and camera described by cfg.
func NewRenderer(cfg *config.Config) (*Renderer, error) {
	bindings, err := parseBindings(cfg.Input.Bindings)
	if err != nil {
		return nil, fmt.Errorf("invalid key bindings: %w", err)
	}

	// Create window
	window, err := openglhelper.NewWindow(openglhelper.WindowOptions{
		Width:   cfg.Window.Width,
		Height:  cfg.Window.Height,
		Title:   cfg.Window.Title,
		VSync:   cfg.Window.VSync,
		GLMajor: cfg.Window.GLMajor,
		GLMinor: cfg.Window.GLMinor,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	near, far := cfg.Camera.Near, cfg.Camera.Far
	if near <= 0 || far <= near {
		near, far = DefaultNear, DefaultFar
	}

	r := &Renderer{
		window:         window,
		camera:         cfg.Camera.NewCamera(),
		input:          input.NewState(cfg.Input.CaptureMouse),
		bindings:       bindings,
		constrainPitch: cfg.Camera.ConstrainPitch,
		clearColor:     cfg.Window.ClearColor,
		near:           near,
		far:            far,
	}
	window.SetMouseCaptured(cfg.Input.CaptureMouse)

	// Set up callbacks
	window.GLFWWindow().SetKeyCallback(r.keyCallback)
	window.GLFWWindow().SetCursorPosCallback(r.cursorPosCallback)
	window.GLFWWindow().SetScrollCallback(r.scrollCallback)
	window.GLFWWindow().SetFramebufferSizeCallback(r.framebufferSizeCallback)

	r.frame = Frame{Window: window, Camera: r.camera}

	return r, nil
}

// Run initializes scene and renders it until the window is asked to close.
// The scene is deleted before Run returns, even when Init fails.
func (r *Renderer) Run(scene Scene) error {
	r.updateMatrices()
	return runScene(scene, &r.frame, r.loop)
}

// runScene brackets loop with the scene's Init and Delete. Delete runs
// whatever Init managed to create before failing.
func runScene(scene Scene, f *Frame, loop func(Scene)) error {
	defer scene.Delete()

	if err := scene.Init(f); err != nil {
		return fmt.Errorf("failed to initialize scene: %w", err)
	}

	loop(scene)
	return nil
}

func (r *Renderer) loop(scene Scene) {
	slog.Info("render loop started")

	// Main loop
	for !r.window.ShouldClose() {
		dt := r.clock.Tick(glfw.GetTime())
		r.frame.DeltaTime = dt
		r.frame.Elapsed = r.clock.Elapsed()

		// Process input
		r.processInput(dt)
		r.updateMatrices()

		scene.Update(&r.frame)

		r.window.Clear(r.clearColor)
		scene.Draw(&r.frame)

		// Swap buffers and poll events
		r.window.SwapBuffers()
		r.window.PollEvents()
	}

	slog.Info("render loop stopped", "elapsed", r.clock.Elapsed())
}

// processInput applies held movement keys and the mouse and scroll input
// gathered by the callbacks since the previous frame.
func (r *Renderer) processInput(dt float32) {
	for _, b := range r.bindings {
		if r.window.GetKeyState(b.key) == Press {
			r.camera.ProcessKeyboard(b.direction, dt)
		}
	}

	if x, y := r.input.TakeMouse(); x != 0 || y != 0 {
		r.camera.ProcessMouseMovement(x, y, r.constrainPitch)
	}

	if scroll := r.input.TakeScroll(); scroll != 0 {
		r.camera.ProcessMouseScroll(scroll)
	}
}

// updateMatrices rebuilds view and projection from the camera. The
// projection is built here, not by the camera, from its field of view.
func (r *Renderer) updateMatrices() {
	r.frame.View = r.camera.ViewMatrix()
	r.frame.Projection = mgl32.Perspective(
		mgl32.DegToRad(r.camera.FieldOfView()),
		r.window.AspectRatio(),
		r.near, r.far)
}

// Close releases the window
func (r *Renderer) Close() {
	r.window.Close()
}

// Callback functions
func (r *Renderer) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}

	switch key {
	case KeyEscape:
		r.window.SetShouldClose(true)
	case KeyCapture:
		// Toggle mouse capture
		r.window.ToggleMouseCaptured()
		r.input.SetCaptured(r.window.IsMouseCaptured())
		slog.Debug("mouse capture toggled", "captured", r.input.Captured())
	}
}

func (r *Renderer) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	r.input.CursorMoved(xpos, ypos)
}

func (r *Renderer) scrollCallback(_ *glfw.Window, _, yoffset float64) {
	r.input.Scrolled(yoffset)
}

func (r *Renderer) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	r.window.OnResize(width, height)
}

// ErrNoScene is returned by RunScene when given a nil scene.
var ErrNoScene = errors.New("no scene")

// RunScene builds a renderer from cfg, runs scene and tears everything
// down. It is the whole body of each demo's main.
func RunScene(cfg *config.Config, scene Scene) error {
	if scene == nil {
		return ErrNoScene
	}

	r, err := NewRenderer(cfg)
	if err != nil {
		return err
	}
	defer r.Close()

	return r.Run(scene)
}
