package engine

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/moonlit-edelweiss/orbitlight/engine/camera"
	"github.com/moonlit-edelweiss/orbitlight/engine/overlay"
	"github.com/moonlit-edelweiss/orbitlight/engine/renderer"
	"github.com/moonlit-edelweiss/orbitlight/engine/scene"
	"github.com/moonlit-edelweiss/orbitlight/engine/window"
)

type noopWindow struct{}

var _ window.Window = noopWindow{}

func (noopWindow) SetUpdateCallback(func())                   {}
func (noopWindow) SetScrollCallback(func(delta float32))      {}
func (noopWindow) SetKeyDownCallback(func(keyCode uint32))    {}
func (noopWindow) SetKeyUpCallback(func(keyCode uint32))      {}
func (noopWindow) SetMouseMoveCallback(func(x, y float64))    {}
func (noopWindow) SetCursorLocked(bool)                       {}
func (noopWindow) CursorLocked() bool                         { return false }
func (noopWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor { return nil }
func (noopWindow) IsRunning() bool                            { return false }
func (noopWindow) Close() error                               { return nil }
func (noopWindow) ProcessMessages()                           {}
func (noopWindow) Width() int                                 { return 1 }
func (noopWindow) Height() int                                { return 1 }

type noopScene struct{}

var _ scene.Scene = noopScene{}

func (noopScene) Name() string                       { return "noop" }
func (noopScene) Camera() camera.Camera              { return nil }
func (noopScene) Renderer() renderer.Renderer        { return nil }
func (noopScene) Controller() scene.FrameController  { return nil }
func (noopScene) Overlay() overlay.Overlay           { return nil }
func (noopScene) Init() error                        { return nil }
func (noopScene) Update(dt float32, fps float64)     {}
func (noopScene) DrawCalls() error                   { return nil }

func TestEngineQuitIsIdempotent(t *testing.T) {
	e := NewEngine(WithWindow(noopWindow{}), WithScene(noopScene{}))
	e.Quit()
	e.Quit()
}

func TestNewEngineRequiresWindow(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic without a window")
		}
	}()
	NewEngine(WithScene(noopScene{}))
}

func TestNewEngineRequiresScene(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic without a scene")
		}
	}()
	NewEngine(WithWindow(noopWindow{}))
}
