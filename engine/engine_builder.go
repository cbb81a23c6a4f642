package engine

import (
	"time"

	"github.com/moonlit-edelweiss/orbitlight/engine/scene"
	"github.com/moonlit-edelweiss/orbitlight/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfilerLog enables or disables periodic frame-time and memory logging.
// The frame rate is measured for the overlay either way.
//
// Parameters:
//   - enabled: if true, enables profiler log output
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfilerLog(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profiler.SetVerbose(enabled)
	}
}

// WithWindow sets the window the engine drives. Required.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithScene sets the scene the frame loop updates and draws. Required.
//
// Parameters:
//   - s: the Scene to drive
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithScene(s scene.Scene) EngineBuilderOption {
	return func(e *engine) {
		e.scene = s
	}
}

// WithRenderFrameLimit sets an optional frame rate cap in frames per second.
// Pass 0 to uncap the loop (default).
//
// Parameters:
//   - fps: maximum frames per second (0 = uncapped)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			e.renderFrameLimit = 0
			return
		}
		e.renderFrameLimit = time.Second / time.Duration(fps)
	}
}
