package scene

import (
	"math"
	"testing"

	"github.com/moonlit-edelweiss/orbitlight/engine/camera"
	"github.com/moonlit-edelweiss/orbitlight/engine/light"
)

func approxEq32(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func newTestController(opts ...FrameControllerOption) (FrameController, camera.OrbitRig, light.Light) {
	rig := camera.NewOrbitRig(
		camera.WithAzimuth(45),
		camera.WithPolar(20),
		camera.WithRadius(5),
	)
	lgt := light.NewLight(light.WithPosition(2, 4, 2))
	return NewFrameController(rig, lgt, opts...), rig, lgt
}

func TestFrameControllerDefaults(t *testing.T) {
	ctrl, _, _ := newTestController()
	if ctrl.Locked() {
		t.Error("expected lock off by default")
	}
	if !ctrl.Spinning() {
		t.Error("expected spin on by default")
	}
	if !ctrl.MarkerVisible() {
		t.Error("expected marker visible by default")
	}
	if ctrl.Rotation() != 0 {
		t.Errorf("expected zero rotation, got %f", ctrl.Rotation())
	}
}

func TestFrameControllerToggles(t *testing.T) {
	ctrl, _, _ := newTestController()

	ctrl.Advance(0.016, InputSample{ToggleLock: true})
	if !ctrl.Locked() {
		t.Error("expected lock on after toggle")
	}
	ctrl.Advance(0.016, InputSample{ToggleLock: true})
	if ctrl.Locked() {
		t.Error("expected lock off after second toggle")
	}

	ctrl.Advance(0.016, InputSample{ToggleMarker: true})
	if ctrl.MarkerVisible() {
		t.Error("expected marker hidden after toggle")
	}
	ctrl.Advance(0.016, InputSample{ToggleMarker: true})
	if !ctrl.MarkerVisible() {
		t.Error("expected marker visible after second toggle")
	}
}

func TestFrameControllerSpinAccumulates(t *testing.T) {
	ctrl, _, _ := newTestController()

	ctrl.Advance(0.5, InputSample{})
	ctrl.Advance(0.25, InputSample{})
	if got := ctrl.Rotation(); !approxEq32(got, 0.75) {
		t.Errorf("expected rotation 0.75, got %f", got)
	}
	if got := ctrl.RotationDegrees(); !approxEq32(got, 37.5) {
		t.Errorf("expected 37.5 degrees, got %f", got)
	}
}

func TestFrameControllerSpinOffResetsRotation(t *testing.T) {
	ctrl, _, _ := newTestController()

	ctrl.Advance(1.0, InputSample{})
	if ctrl.Rotation() == 0 {
		t.Fatal("expected nonzero rotation while spinning")
	}

	ctrl.Advance(0.016, InputSample{ToggleSpin: true})
	if ctrl.Spinning() {
		t.Error("expected spin off after toggle")
	}
	if got := ctrl.Rotation(); got != 0 {
		t.Errorf("expected rotation reset to zero, got %f", got)
	}

	// While stopped the cube holds still.
	ctrl.Advance(1.0, InputSample{})
	if got := ctrl.Rotation(); got != 0 {
		t.Errorf("expected rotation to stay zero while stopped, got %f", got)
	}

	// Resuming starts over from zero.
	ctrl.Advance(0.016, InputSample{ToggleSpin: true})
	ctrl.Advance(0.5, InputSample{})
	if got := ctrl.Rotation(); !approxEq32(got, 0.516) {
		t.Errorf("expected rotation to restart from zero, got %f", got)
	}
}

func TestFrameControllerScrollMovesLight(t *testing.T) {
	ctrl, _, lgt := newTestController()

	ctrl.Advance(0, InputSample{ScrollDelta: 2})
	if got := lgt.Height(); !approxEq32(got, 5) {
		t.Errorf("expected light height 5 after scrolling up, got %f", got)
	}

	ctrl.Advance(0, InputSample{ScrollDelta: 100})
	if got := lgt.Height(); got != lgt.MaxHeight() {
		t.Errorf("expected light clamped at %f, got %f", lgt.MaxHeight(), got)
	}

	ctrl.Advance(0, InputSample{ScrollDelta: -100})
	if got := lgt.Height(); got != lgt.MinHeight() {
		t.Errorf("expected light clamped at %f, got %f", lgt.MinHeight(), got)
	}
}

func TestFrameControllerMouseOnlyWhileLocked(t *testing.T) {
	ctrl, rig, _ := newTestController()
	startAzimuth := rig.Azimuth()
	startPolar := rig.Polar()

	// Unlocked: mouse movement is ignored.
	ctrl.Advance(0.016, InputSample{MouseDX: 40, MouseDY: 40})
	if rig.Azimuth() != startAzimuth || rig.Polar() != startPolar {
		t.Error("expected mouse movement to be ignored while unlocked")
	}

	// Locked: movement orbits the rig.
	ctrl.Advance(0.016, InputSample{ToggleLock: true})
	ctrl.Advance(0.016, InputSample{MouseDX: 10, MouseDY: -4})
	if got := rig.Azimuth(); !approxEq32(got, startAzimuth-5) {
		t.Errorf("expected azimuth %f, got %f", startAzimuth-5, got)
	}
	if got := rig.Polar(); !approxEq32(got, startPolar+2) {
		t.Errorf("expected polar %f, got %f", startPolar+2, got)
	}
}

func TestFrameControllerInitialStateOptions(t *testing.T) {
	ctrl, _, _ := newTestController(
		WithLocked(true),
		WithSpinning(false),
		WithMarkerVisible(false),
	)
	if !ctrl.Locked() {
		t.Error("expected lock on")
	}
	if ctrl.Spinning() {
		t.Error("expected spin off")
	}
	if ctrl.MarkerVisible() {
		t.Error("expected marker hidden")
	}
}

func TestFrameControllerLockCallback(t *testing.T) {
	var events []bool
	ctrl, _, _ := newTestController(WithLockChangedCallback(func(locked bool) {
		events = append(events, locked)
	}))

	if len(events) != 0 {
		t.Fatal("callback must not fire for the initial state")
	}

	ctrl.Advance(0.016, InputSample{ToggleLock: true})
	ctrl.Advance(0.016, InputSample{ToggleLock: true})
	if len(events) != 2 || events[0] != true || events[1] != false {
		t.Errorf("expected callback sequence [true false], got %v", events)
	}
}
