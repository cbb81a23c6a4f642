package scene

import (
	"sync"

	"github.com/moonlit-edelweiss/orbitlight/engine/camera"
	"github.com/moonlit-edelweiss/orbitlight/engine/light"
)

const (
	// lightScrollStep is the light height change per scroll unit.
	lightScrollStep = 0.5

	// spinRate is the rotation accumulator increase per second while spinning.
	spinRate = 1.0

	// cubeRotationScale converts the rotation accumulator to degrees.
	cubeRotationScale = 50.0
)

// FrameController owns the per-frame state update: toggle flags, the cube
// rotation accumulator, light height from scroll input, and camera orbit from
// mouse input. It mutates the orbit rig and light it was constructed with but
// issues no draw calls itself. Thread-safe for concurrent access.
type FrameController interface {
	// Advance applies one frame's worth of input and elapsed time:
	// toggle flips first, then scroll to light height, then the rotation
	// accumulator, then mouse delta to the orbit rig (only while locked).
	//
	// Parameters:
	//   - dt: elapsed time since the previous frame in seconds
	//   - in: the input accumulated since the previous frame
	Advance(dt float32, in InputSample)

	// Locked reports whether mouse-lock is active.
	Locked() bool

	// Spinning reports whether the cube spin is active.
	Spinning() bool

	// MarkerVisible reports whether the light-marker sphere should be drawn.
	MarkerVisible() bool

	// Rotation returns the rotation accumulator in seconds of active spin.
	//
	// Returns:
	//   - float32: the accumulator value
	Rotation() float32

	// RotationDegrees returns the cube rotation angle in degrees, the
	// accumulator scaled by the fixed rotation rate.
	//
	// Returns:
	//   - float32: the cube rotation angle about its spin axis
	RotationDegrees() float32

	// Rig returns the orbit rig the controller steers.
	Rig() camera.OrbitRig

	// Light returns the light the controller steers.
	Light() light.Light
}

// frameController is the implementation of the FrameController interface.
type frameController struct {
	mu *sync.Mutex

	rig camera.OrbitRig
	lgt light.Light

	locked   bool
	spinning bool
	marker   bool
	rotation float32

	// onLockChanged fires after the mouse-lock flag flips, with the new state.
	onLockChanged func(locked bool)
}

var _ FrameController = &frameController{}

// NewFrameController creates a FrameController steering the given orbit rig and light.
// The cube starts spinning and the marker visible; mouse-lock starts off.
//
// Parameters:
//   - rig: the orbit rig to apply mouse deltas to (must not be nil)
//   - lgt: the light to apply scroll deltas to (must not be nil)
//   - opts: a variadic list of FrameControllerOption functions to configure the controller
//
// Returns:
//   - FrameController: the newly created controller
func NewFrameController(rig camera.OrbitRig, lgt light.Light, opts ...FrameControllerOption) FrameController {
	if rig == nil {
		panic("scene: NewFrameController requires a non-nil OrbitRig")
	}
	if lgt == nil {
		panic("scene: NewFrameController requires a non-nil Light")
	}

	c := &frameController{
		mu:       &sync.Mutex{},
		rig:      rig,
		lgt:      lgt,
		spinning: true,
		marker:   true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *frameController) Advance(dt float32, in InputSample) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if in.ToggleLock {
		c.locked = !c.locked
		if c.onLockChanged != nil {
			c.onLockChanged(c.locked)
		}
	}
	if in.ToggleSpin {
		c.spinning = !c.spinning
		if !c.spinning {
			c.rotation = 0
		}
	}
	if in.ToggleMarker {
		c.marker = !c.marker
	}

	if in.ScrollDelta != 0 {
		c.lgt.AddHeight(in.ScrollDelta * lightScrollStep)
	}

	if c.spinning {
		c.rotation += dt * spinRate
	}

	if c.locked && (in.MouseDX != 0 || in.MouseDY != 0) {
		c.rig.ApplyMouseDelta(in.MouseDX, in.MouseDY)
	}
}

func (c *frameController) Locked() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.locked
}

func (c *frameController) Spinning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.spinning
}

func (c *frameController) MarkerVisible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.marker
}

func (c *frameController) Rotation() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rotation
}

func (c *frameController) RotationDegrees() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rotation * cubeRotationScale
}

func (c *frameController) Rig() camera.OrbitRig {
	return c.rig
}

func (c *frameController) Light() light.Light {
	return c.lgt
}
