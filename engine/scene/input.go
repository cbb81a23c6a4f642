package scene

import (
	"sync"

	"github.com/moonlit-edelweiss/orbitlight/common"
	"github.com/moonlit-edelweiss/orbitlight/engine/window"
)

// InputSample is the input accumulated since the previous frame: discrete toggle
// presses, total scroll delta, and total mouse movement delta.
type InputSample struct {
	ToggleLock   bool
	ToggleSpin   bool
	ToggleMarker bool
	ScrollDelta  float32
	MouseDX      float32
	MouseDY      float32
}

// inputCollector buffers window input events between frames. Callbacks fire on
// the message loop thread; Sample drains the buffered state once per frame.
// Key toggles are edge-triggered so key repeat does not re-toggle.
type inputCollector struct {
	mu *sync.Mutex

	pending InputSample

	held map[uint32]bool

	lastMouseX float32
	lastMouseY float32
	hasMouse   bool
}

// newInputCollector creates an inputCollector and attaches it to the window's
// key, scroll, and mouse-move callbacks.
func newInputCollector(w window.Window) *inputCollector {
	c := &inputCollector{
		mu:   &sync.Mutex{},
		held: make(map[uint32]bool),
	}

	w.SetKeyDownCallback(c.keyDown)
	w.SetKeyUpCallback(c.keyUp)
	w.SetScrollCallback(c.scroll)
	w.SetMouseMoveCallback(c.mouseMove)

	return c
}

// Sample returns the input accumulated since the last call and resets the buffer.
func (c *inputCollector) Sample() InputSample {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := c.pending
	c.pending = InputSample{}
	return out
}

// ResetMouse discards the stored mouse position so the next movement event sets
// a fresh baseline instead of producing a large spurious delta. Called when the
// cursor lock state changes, since the reported position jumps between screen
// and virtual coordinates.
func (c *inputCollector) ResetMouse() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hasMouse = false
}

func (c *inputCollector) keyDown(keyCode uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.held[keyCode] {
		return
	}
	c.held[keyCode] = true

	switch keyCode {
	case common.KeyL:
		c.pending.ToggleLock = true
	case common.KeyS:
		c.pending.ToggleSpin = true
	case common.KeyD:
		c.pending.ToggleMarker = true
	}
}

func (c *inputCollector) keyUp(keyCode uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.held, keyCode)
}

func (c *inputCollector) scroll(delta float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending.ScrollDelta += delta
}

func (c *inputCollector) mouseMove(x, y float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fx, fy := float32(x), float32(y)
	if c.hasMouse {
		c.pending.MouseDX += fx - c.lastMouseX
		c.pending.MouseDY += fy - c.lastMouseY
	}
	c.lastMouseX = fx
	c.lastMouseY = fy
	c.hasMouse = true
}
