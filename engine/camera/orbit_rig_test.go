package camera

import (
	"math"
	"testing"
)

const epsilon = 1e-4

func approxEq(a, b float32) bool {
	return math.Abs(float64(a-b)) < epsilon
}

func TestOrbitRigDefaultPosition(t *testing.T) {
	// Azimuth 0, polar 0, radius 5 places the camera on the +Z axis.
	r := NewOrbitRig()
	x, y, z := r.Position()
	if !approxEq(x, 0) || !approxEq(y, 0) || !approxEq(z, 5) {
		t.Errorf("position = (%v, %v, %v), want (0, 0, 5)", x, y, z)
	}
}

func TestOrbitRigSphericalConversion(t *testing.T) {
	tests := []struct {
		name                string
		azimuth, polar      float32
		radius              float32
		wantX, wantY, wantZ float32
	}{
		{"plus_z", 0, 0, 5, 0, 0, 5},
		{"plus_x", 90, 0, 5, 5, 0, 0},
		{"minus_z", 180, 0, 5, 0, 0, -5},
		{"straight_up_limit", 0, 85, 5, 0, 5 * sinDeg(85), 5 * cosDeg(85)},
		{"diagonal", 45, 45, 2, 2 * cosDeg(45) * sinDeg(45), 2 * sinDeg(45), 2 * cosDeg(45) * cosDeg(45)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewOrbitRig(
				WithAzimuth(tt.azimuth),
				WithPolar(tt.polar),
				WithRadius(tt.radius),
			)
			x, y, z := r.Position()
			if !approxEq(x, tt.wantX) || !approxEq(y, tt.wantY) || !approxEq(z, tt.wantZ) {
				t.Errorf("position = (%v, %v, %v), want (%v, %v, %v)", x, y, z, tt.wantX, tt.wantY, tt.wantZ)
			}
		})
	}
}

func TestOrbitRigTargetOffset(t *testing.T) {
	r := NewOrbitRig(WithTarget(1, 2, 3))
	x, y, z := r.Position()
	if !approxEq(x, 1) || !approxEq(y, 2) || !approxEq(z, 8) {
		t.Errorf("position = (%v, %v, %v), want (1, 2, 8)", x, y, z)
	}
}

func TestOrbitRigApplyMouseDelta(t *testing.T) {
	r := NewOrbitRig(WithAzimuth(45), WithPolar(20))
	r.ApplyMouseDelta(10, -4)
	if got := r.Azimuth(); !approxEq(got, 40) {
		t.Errorf("azimuth = %v, want 40", got)
	}
	if got := r.Polar(); !approxEq(got, 22) {
		t.Errorf("polar = %v, want 22", got)
	}
}

func TestOrbitRigPolarClamp(t *testing.T) {
	r := NewOrbitRig()
	// Drag far past the upper bound, then far past the lower bound.
	for range 100 {
		r.ApplyMouseDelta(0, -10)
	}
	if got := r.Polar(); got != 85 {
		t.Errorf("polar after dragging up = %v, want 85", got)
	}
	for range 100 {
		r.ApplyMouseDelta(0, 10)
	}
	if got := r.Polar(); got != -85 {
		t.Errorf("polar after dragging down = %v, want -85", got)
	}
}

func TestOrbitRigInitialPolarClamped(t *testing.T) {
	r := NewOrbitRig(WithPolar(200))
	if got := r.Polar(); got != 85 {
		t.Errorf("polar = %v, want 85", got)
	}
	r = NewOrbitRig(WithPolar(-200))
	if got := r.Polar(); got != -85 {
		t.Errorf("polar = %v, want -85", got)
	}
	// Custom bounds clamp the initial angle too.
	r = NewOrbitRig(WithPolarBounds(-30, 30), WithPolar(60))
	if got := r.Polar(); got != 30 {
		t.Errorf("polar with custom bounds = %v, want 30", got)
	}
}

func TestOrbitRigSetPolarClamps(t *testing.T) {
	r := NewOrbitRig()
	r.SetPolar(200)
	if got := r.Polar(); got != 85 {
		t.Errorf("polar = %v, want 85", got)
	}
	r.SetPolar(-200)
	if got := r.Polar(); got != -85 {
		t.Errorf("polar = %v, want -85", got)
	}
}

func TestOrbitRigCustomSensitivity(t *testing.T) {
	r := NewOrbitRig(WithMouseSensitivity(1.0))
	r.ApplyMouseDelta(30, 0)
	if got := r.Azimuth(); !approxEq(got, -30) {
		t.Errorf("azimuth = %v, want -30", got)
	}
}

func TestCameraViewMatrixFromRig(t *testing.T) {
	rig := NewOrbitRig()
	c := NewCamera(WithRig(rig), WithAspect(800.0/600.0))

	// The target at the origin should land 5 units down the view-space -Z axis.
	m := c.ViewMatrix()
	x := m[0]*0 + m[4]*0 + m[8]*0 + m[12]
	y := m[1]*0 + m[5]*0 + m[9]*0 + m[13]
	z := m[2]*0 + m[6]*0 + m[10]*0 + m[14]
	if !approxEq(x, 0) || !approxEq(y, 0) || !approxEq(z, -5) {
		t.Errorf("view-space target = (%v, %v, %v), want (0, 0, -5)", x, y, z)
	}
}

func TestCameraUpdateTracksRig(t *testing.T) {
	rig := NewOrbitRig()
	c := NewCamera(WithRig(rig))
	before := c.ViewMatrix()

	rig.ApplyMouseDelta(90, 0)
	c.Update()
	after := c.ViewMatrix()
	if before == after {
		t.Error("view matrix did not change after rotating the rig")
	}
}

func TestCameraProjectionAspect(t *testing.T) {
	c := NewCamera(WithRig(NewOrbitRig()), WithAspect(2.0))
	m := c.ProjectionMatrix()
	if !approxEq(m[0]*2.0, m[5]) {
		t.Errorf("m[0] = %v, m[5] = %v, want m[0]*aspect == m[5]", m[0], m[5])
	}
}

func sinDeg(deg float64) float32 {
	return float32(math.Sin(deg * math.Pi / 180.0))
}

func cosDeg(deg float64) float32 {
	return float32(math.Cos(deg * math.Pi / 180.0))
}
