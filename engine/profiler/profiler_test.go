package profiler

import (
	"testing"
	"time"
)

func TestProfilerFPSInitiallyZero(t *testing.T) {
	p := NewProfiler()
	if got := p.FPS(); got != 0 {
		t.Fatalf("expected FPS 0 before first interval, got %f", got)
	}
}

func TestProfilerTickBeforeInterval(t *testing.T) {
	p := NewProfiler()
	if updated := p.Tick(); updated {
		t.Fatal("expected no FPS update before the interval elapsed")
	}
}

func TestProfilerTickUpdatesFPS(t *testing.T) {
	p := NewProfiler()
	p.lastTime = time.Now().Add(-2 * time.Second)

	if updated := p.Tick(); !updated {
		t.Fatal("expected FPS update after the interval elapsed")
	}
	if got := p.FPS(); got <= 0 {
		t.Fatalf("expected positive FPS measurement, got %f", got)
	}
	if p.frameCount != 0 {
		t.Fatalf("expected frame count reset after update, got %d", p.frameCount)
	}
}
