package scene

import (
	"sync"
	"testing"

	"github.com/moonlit-edelweiss/orbitlight/common"
)

func newTestCollector() *inputCollector {
	return &inputCollector{
		mu:   &sync.Mutex{},
		held: make(map[uint32]bool),
	}
}

func TestInputCollectorSampleDrains(t *testing.T) {
	c := newTestCollector()
	c.keyDown(common.KeyL)
	c.scroll(1.5)

	first := c.Sample()
	if !first.ToggleLock {
		t.Error("expected ToggleLock in first sample")
	}
	if first.ScrollDelta != 1.5 {
		t.Errorf("expected scroll delta 1.5, got %f", first.ScrollDelta)
	}

	second := c.Sample()
	if second != (InputSample{}) {
		t.Errorf("expected empty second sample, got %+v", second)
	}
}

func TestInputCollectorKeyRepeatIgnored(t *testing.T) {
	c := newTestCollector()

	// GLFW fires key-down again on repeat while the key stays held.
	c.keyDown(common.KeyS)
	c.keyDown(common.KeyS)
	c.keyDown(common.KeyS)
	if got := c.Sample(); !got.ToggleSpin {
		t.Error("expected ToggleSpin from first press")
	}

	c.keyDown(common.KeyS)
	if got := c.Sample(); got.ToggleSpin {
		t.Error("expected repeat to be ignored while key is held")
	}

	c.keyUp(common.KeyS)
	c.keyDown(common.KeyS)
	if got := c.Sample(); !got.ToggleSpin {
		t.Error("expected ToggleSpin after release and re-press")
	}
}

func TestInputCollectorScrollAccumulates(t *testing.T) {
	c := newTestCollector()
	c.scroll(1)
	c.scroll(-0.25)
	c.scroll(2)
	if got := c.Sample().ScrollDelta; got != 2.75 {
		t.Errorf("expected accumulated scroll 2.75, got %f", got)
	}
}

func TestInputCollectorMouseDeltas(t *testing.T) {
	c := newTestCollector()

	// The first event only establishes the baseline.
	c.mouseMove(100, 100)
	if got := c.Sample(); got.MouseDX != 0 || got.MouseDY != 0 {
		t.Errorf("expected no delta from baseline event, got %+v", got)
	}

	c.mouseMove(110, 96)
	c.mouseMove(115, 98)
	got := c.Sample()
	if got.MouseDX != 15 || got.MouseDY != -2 {
		t.Errorf("expected delta (15, -2), got (%f, %f)", got.MouseDX, got.MouseDY)
	}
}

func TestInputCollectorResetMouse(t *testing.T) {
	c := newTestCollector()
	c.mouseMove(100, 100)
	c.ResetMouse()

	// After a reset the next event must not produce a jump delta.
	c.mouseMove(500, 500)
	if got := c.Sample(); got.MouseDX != 0 || got.MouseDY != 0 {
		t.Errorf("expected no delta after reset, got %+v", got)
	}

	c.mouseMove(510, 505)
	got := c.Sample()
	if got.MouseDX != 10 || got.MouseDY != 5 {
		t.Errorf("expected delta (10, 5), got (%f, %f)", got.MouseDX, got.MouseDY)
	}
}
