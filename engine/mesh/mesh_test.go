package mesh

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestVertexMarshal(t *testing.T) {
	v := Vertex{
		Position: [3]float32{1, 2, 3},
		Normal:   [3]float32{0, 1, 0},
		Color:    [4]float32{0.5, 0.25, 0.125, 1},
	}
	buf := v.Marshal()
	if len(buf) != 40 {
		t.Fatalf("marshaled size = %d, want 40", len(buf))
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(buf[0:])); got != 1 {
		t.Errorf("position.x = %v, want 1", got)
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(buf[16:])); got != 1 {
		t.Errorf("normal.y = %v, want 1", got)
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(buf[36:])); got != 1 {
		t.Errorf("color.a = %v, want 1", got)
	}
}

func TestVertexBufferLayout(t *testing.T) {
	layouts := VertexBufferLayout()
	if len(layouts) != 1 {
		t.Fatalf("layout count = %d, want 1", len(layouts))
	}
	if layouts[0].ArrayStride != 40 {
		t.Errorf("stride = %d, want 40", layouts[0].ArrayStride)
	}
	if len(layouts[0].Attributes) != 3 {
		t.Errorf("attribute count = %d, want 3", len(layouts[0].Attributes))
	}
}

func TestNewCube(t *testing.T) {
	m := NewCube("cube", 2.0, [4]float32{1, 1, 1, 1})
	if got := len(m.Vertices()); got != 24 {
		t.Errorf("vertex count = %d, want 24", got)
	}
	if got := m.IndexCount(); got != 36 {
		t.Errorf("index count = %d, want 36", got)
	}

	// Every vertex sits on the surface of a cube with half-extent 1 and
	// carries a unit axis-aligned normal.
	for i, v := range m.Vertices() {
		for axis := range 3 {
			if a := float32(math.Abs(float64(v.Position[axis]))); a != 1 {
				t.Fatalf("vertex %d position %v not on cube surface", i, v.Position)
			}
		}
		lenSq := v.Normal[0]*v.Normal[0] + v.Normal[1]*v.Normal[1] + v.Normal[2]*v.Normal[2]
		if lenSq != 1 {
			t.Fatalf("vertex %d normal %v not unit length", i, v.Normal)
		}
	}
}

func TestNewCubeData(t *testing.T) {
	m := NewCube("cube", 1.0, [4]float32{1, 0, 0, 1})
	if got := len(m.VertexData()); got != 24*40 {
		t.Errorf("vertex data size = %d, want %d", got, 24*40)
	}
	if got := len(m.IndexData()); got != 36*4 {
		t.Errorf("index data size = %d, want %d", got, 36*4)
	}
	if got := binary.LittleEndian.Uint32(m.IndexData()[8:]); got != 2 {
		t.Errorf("third index = %d, want 2", got)
	}
}

func TestNewUVSphere(t *testing.T) {
	const (
		rings    = 8
		segments = 12
		radius   = 0.2
	)
	m := NewUVSphere("marker", radius, rings, segments, [4]float32{1, 1, 0, 1})

	wantVerts := (rings + 1) * (segments + 1)
	if got := len(m.Vertices()); got != wantVerts {
		t.Errorf("vertex count = %d, want %d", got, wantVerts)
	}
	wantIndices := uint32(rings * segments * 6)
	if got := m.IndexCount(); got != wantIndices {
		t.Errorf("index count = %d, want %d", got, wantIndices)
	}

	for i, v := range m.Vertices() {
		dist := math.Sqrt(float64(v.Position[0]*v.Position[0] + v.Position[1]*v.Position[1] + v.Position[2]*v.Position[2]))
		if math.Abs(dist-radius) > 1e-5 {
			t.Fatalf("vertex %d at distance %v, want %v", i, dist, radius)
		}
	}
}

func TestNewGrid(t *testing.T) {
	grid := [4]float32{0.4, 0.4, 0.4, 1}
	axis := [4]float32{0.8, 0.2, 0.2, 1}
	m := NewGrid("grid", 10, 1.0, grid, axis)

	// (2*10 + 1) positions per direction, 2 directions, 2 vertices per line.
	wantLines := (2*10 + 1) * 2
	if got := len(m.Vertices()); got != wantLines*2 {
		t.Errorf("vertex count = %d, want %d", got, wantLines*2)
	}
	if got := m.IndexCount(); got != uint32(wantLines*2) {
		t.Errorf("index count = %d, want %d", got, wantLines*2)
	}

	axisLines := 0
	for _, v := range m.Vertices() {
		if v.Position[1] != 0 {
			t.Fatalf("grid vertex %v not in the XZ plane", v.Position)
		}
		if v.Color == axis {
			axisLines++
		}
	}
	// 2 center lines × 2 vertices each.
	if axisLines != 4 {
		t.Errorf("axis-colored vertices = %d, want 4", axisLines)
	}
}

func TestMeshProviderNamed(t *testing.T) {
	m := NewCube("cube", 1.0, [4]float32{1, 1, 1, 1})
	if m.Provider() == nil {
		t.Fatal("mesh has no provider")
	}
	if got := m.Provider().Label(); got != "cube_mesh" {
		t.Errorf("provider label = %q, want %q", got, "cube_mesh")
	}
}
