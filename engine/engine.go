package engine

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/moonlit-edelweiss/orbitlight/engine/profiler"
	"github.com/moonlit-edelweiss/orbitlight/engine/scene"
	"github.com/moonlit-edelweiss/orbitlight/engine/window"
)

// engine implements the Engine interface.
// Drives the scene and the window message loop on a single thread.
type engine struct {
	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window window.Window
	scene  scene.Scene

	profiler *profiler.Profiler

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped
}

// Engine is the main entry point for the demo.
// It owns the frame loop: input is polled by the window, the scene advances its
// state and uniforms, and the renderer encodes and presents the frame. Everything
// runs on the calling goroutine because GLFW requires its event loop on the main
// OS thread.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Scene returns the registered scene.
	//
	// Returns:
	//   - scene.Scene: the scene driven by the frame loop
	Scene() scene.Scene

	// EnableProfilerLog turns on periodic frame-time and memory logging.
	// The frame rate itself is always measured for the overlay status line.
	EnableProfilerLog()

	// DisableProfilerLog turns off periodic profiler logging.
	DisableProfilerLog()

	// SetRenderFrameLimit sets an optional frame rate cap in frames per second.
	// Pass 0 to uncap the loop (default); with VSync enabled Present blocks on
	// the display refresh regardless.
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// Run initializes the scene's GPU resources and blocks in the frame loop
	// until the window closes or Quit is called.
	//
	// Returns:
	//   - error: error if scene initialization fails
	Run() error

	// Quit signals the frame loop to stop and closes the window.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
// A window and a scene are required; NewEngine panics if either is missing
// after the options are applied.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		quitChannel: make(chan struct{}),
		profiler:    profiler.NewProfiler(),
	}

	for _, opt := range options {
		opt(e)
	}

	if e.window == nil {
		panic("engine: NewEngine requires a Window, use WithWindow")
	}
	if e.scene == nil {
		panic("engine: NewEngine requires a Scene, use WithScene")
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Scene() scene.Scene {
	return e.scene
}

func (e *engine) Run() error {
	if err := e.scene.Init(); err != nil {
		return fmt.Errorf("engine: scene init failed: %w", err)
	}

	lastFrame := time.Now()

	e.window.SetUpdateCallback(func() {
		select {
		case <-e.quitChannel:
			_ = e.window.Close()
			return
		default:
		}

		now := time.Now()
		dt := float32(now.Sub(lastFrame).Seconds())
		lastFrame = now

		e.step(dt)

		if e.renderFrameLimit > 0 {
			if remaining := e.renderFrameLimit - time.Since(now); remaining > 0 {
				time.Sleep(remaining)
			}
		}
	})

	// Blocks until the window closes; input callbacks and the update callback
	// all fire from inside this loop.
	e.window.ProcessMessages()

	e.signalQuit()
	return nil
}

// step advances and draws a single frame.
func (e *engine) step(dt float32) {
	e.scene.Update(dt, e.profiler.FPS())

	if err := e.scene.Renderer().BeginFrame(); err != nil {
		log.Printf("engine: begin frame failed: %v", err)
		return
	}
	if err := e.scene.DrawCalls(); err != nil {
		log.Printf("engine: draw calls failed: %v", err)
	}
	e.scene.Renderer().EndFrame()
	e.scene.Renderer().Present()

	e.profiler.Tick()
}

// Quit signals the frame loop to stop.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel so the next update callback closes the window.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		close(e.quitChannel)
	})
}

// EnableProfilerLog turns on periodic profiler logging.
func (e *engine) EnableProfilerLog() {
	e.profiler.SetVerbose(true)
}

// DisableProfilerLog turns off periodic profiler logging.
func (e *engine) DisableProfilerLog() {
	e.profiler.SetVerbose(false)
}

// SetRenderFrameLimit sets an optional frame rate cap.
// Pass 0 to uncap the loop.
func (e *engine) SetRenderFrameLimit(fps float64) {
	if fps <= 0 {
		e.renderFrameLimit = 0
		return
	}
	e.renderFrameLimit = time.Second / time.Duration(fps)
}
