package common

import (
	"math"
	"testing"
)

const epsilon = 1e-5

func approxEq(a, b float32) bool {
	return math.Abs(float64(a-b)) < epsilon
}

func matApproxEq(a, b []float32) bool {
	if len(a) != 16 || len(b) != 16 {
		return false
	}
	for i := range a {
		if !approxEq(a[i], b[i]) {
			return false
		}
	}
	return true
}

func TestIdentity(t *testing.T) {
	m := make([]float32, 16)
	for i := range m {
		m[i] = float32(i)
	}
	Identity(m)
	want := []float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
	if !matApproxEq(m, want) {
		t.Errorf("Identity() = %v, want %v", m, want)
	}
}

func TestMul4Identity(t *testing.T) {
	ident := make([]float32, 16)
	Identity(ident)
	m := []float32{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}
	out := make([]float32, 16)
	Mul4(out, ident, m)
	if !matApproxEq(out, m) {
		t.Errorf("I * M = %v, want %v", out, m)
	}
	Mul4(out, m, ident)
	if !matApproxEq(out, m) {
		t.Errorf("M * I = %v, want %v", out, m)
	}
}

func TestMul4InPlace(t *testing.T) {
	// out aliasing an operand must still produce the correct product.
	m := make([]float32, 16)
	Translation(m, 1, 2, 3)
	rot := make([]float32, 16)
	AxisAngle(rot, 0, 1, 0, float32(math.Pi/2))

	want := make([]float32, 16)
	Mul4(want, m, rot)
	Mul4(m, m, rot)
	if !matApproxEq(m, want) {
		t.Errorf("aliased Mul4 = %v, want %v", m, want)
	}
}

func TestTranslationTransformsPoint(t *testing.T) {
	m := make([]float32, 16)
	Translation(m, 1, -2, 3)
	x, y, z := transformPoint(m, 5, 5, 5)
	if !approxEq(x, 6) || !approxEq(y, 3) || !approxEq(z, 8) {
		t.Errorf("translated point = (%v, %v, %v), want (6, 3, 8)", x, y, z)
	}
}

func TestAxisAngle(t *testing.T) {
	tests := []struct {
		name                string
		axisX, axisY, axisZ float32
		angleDeg            float32
		inX, inY, inZ       float32
		wantX, wantY, wantZ float32
	}{
		{"y_axis_90_maps_x_to_minus_z", 0, 1, 0, 90, 1, 0, 0, 0, 0, -1},
		{"x_axis_90_maps_y_to_z", 1, 0, 0, 90, 0, 1, 0, 0, 0, 1},
		{"z_axis_180_negates_x", 0, 0, 1, 180, 1, 0, 0, -1, 0, 0},
		{"unnormalized_axis", 0, 10, 0, 90, 1, 0, 0, 0, 0, -1},
		{"zero_angle_identity", 0, 1, 0, 0, 1, 2, 3, 1, 2, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := make([]float32, 16)
			AxisAngle(m, tt.axisX, tt.axisY, tt.axisZ, Deg2Rad(tt.angleDeg))
			x, y, z := transformPoint(m, tt.inX, tt.inY, tt.inZ)
			if !approxEq(x, tt.wantX) || !approxEq(y, tt.wantY) || !approxEq(z, tt.wantZ) {
				t.Errorf("rotated point = (%v, %v, %v), want (%v, %v, %v)", x, y, z, tt.wantX, tt.wantY, tt.wantZ)
			}
		})
	}
}

func TestAxisAngleZeroAxis(t *testing.T) {
	m := make([]float32, 16)
	AxisAngle(m, 0, 0, 0, Deg2Rad(45))
	want := make([]float32, 16)
	Identity(want)
	if !matApproxEq(m, want) {
		t.Errorf("zero axis = %v, want identity", m)
	}
}

func TestLookAtOrigin(t *testing.T) {
	// Camera at (0, 0, 5) looking at origin: world origin lands at
	// (0, 0, -5) in view space.
	m := make([]float32, 16)
	LookAt(m, 0, 0, 5, 0, 0, 0, 0, 1, 0)
	x, y, z := transformPoint(m, 0, 0, 0)
	if !approxEq(x, 0) || !approxEq(y, 0) || !approxEq(z, -5) {
		t.Errorf("view-space origin = (%v, %v, %v), want (0, 0, -5)", x, y, z)
	}
}

func TestPerspective(t *testing.T) {
	m := make([]float32, 16)
	Perspective(m, Deg2Rad(90), 2.0, 0.1, 100.0)
	f := float32(1.0 / math.Tan(math.Pi/4))
	if !approxEq(m[0], f/2.0) {
		t.Errorf("m[0] = %v, want %v", m[0], f/2.0)
	}
	if !approxEq(m[5], f) {
		t.Errorf("m[5] = %v, want %v", m[5], f)
	}
	if !approxEq(m[11], -1) {
		t.Errorf("m[11] = %v, want -1", m[11])
	}
	if !approxEq(m[15], 0) {
		t.Errorf("m[15] = %v, want 0", m[15])
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi float32
		want      float32
	}{
		{"below", -10, -5, 10, -5},
		{"above", 99, -5, 10, 10},
		{"inside", 3, -5, 10, 3},
		{"at_lower_bound", -5, -5, 10, -5},
		{"at_upper_bound", 10, -5, 10, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestDeg2Rad(t *testing.T) {
	if got := Deg2Rad(180); !approxEq(got, math.Pi) {
		t.Errorf("Deg2Rad(180) = %v, want pi", got)
	}
	if got := Deg2Rad(0); got != 0 {
		t.Errorf("Deg2Rad(0) = %v, want 0", got)
	}
}

func TestSliceToBytes(t *testing.T) {
	data := []float32{1, 2, 3}
	b := SliceToBytes(data)
	if len(b) != 12 {
		t.Errorf("len = %d, want 12", len(b))
	}
	if b = SliceToBytes([]float32(nil)); b != nil {
		t.Errorf("nil slice produced %d bytes, want nil", len(b))
	}
}

// transformPoint applies a column-major 4x4 matrix to a point (w = 1).
func transformPoint(m []float32, x, y, z float32) (float32, float32, float32) {
	ox := m[0]*x + m[4]*y + m[8]*z + m[12]
	oy := m[1]*x + m[5]*y + m[9]*z + m[13]
	oz := m[2]*x + m[6]*y + m[10]*z + m[14]
	return ox, oy, oz
}
