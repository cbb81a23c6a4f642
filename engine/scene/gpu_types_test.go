package scene

import (
	"encoding/binary"
	"math"
	"testing"
)

func readFloat32(t *testing.T, data []byte, offset int) float32 {
	t.Helper()
	return math.Float32frombits(binary.LittleEndian.Uint32(data[offset:]))
}

func TestSceneUniformMarshalSize(t *testing.T) {
	var u SceneUniform
	if got := len(u.Marshal()); got != SceneUniformSize {
		t.Errorf("expected %d bytes, got %d", SceneUniformSize, got)
	}
}

func TestSceneUniformMarshalLayout(t *testing.T) {
	u := SceneUniform{
		ViewPos:    [3]float32{1, 2, 3},
		LightPos:   [3]float32{4, 5, 6},
		LightColor: [3]float32{0.5, 0.25, 0.125},
	}
	for i := range 16 {
		u.Model[i] = float32(i + 1)
		u.View[i] = float32(i + 100)
		u.Proj[i] = float32(i + 200)
	}
	data := u.Marshal()

	// Matrices sit at the struct offsets the shader expects.
	if got := readFloat32(t, data, 0); got != 1 {
		t.Errorf("expected model[0] at offset 0, got %f", got)
	}
	if got := readFloat32(t, data, 60); got != 16 {
		t.Errorf("expected model[15] at offset 60, got %f", got)
	}
	if got := readFloat32(t, data, 64); got != 100 {
		t.Errorf("expected view[0] at offset 64, got %f", got)
	}
	if got := readFloat32(t, data, 128); got != 200 {
		t.Errorf("expected proj[0] at offset 128, got %f", got)
	}

	// Each vec3 is padded out to 16 bytes.
	if got := readFloat32(t, data, 192); got != 1 {
		t.Errorf("expected view_pos.x at offset 192, got %f", got)
	}
	if got := readFloat32(t, data, 208); got != 4 {
		t.Errorf("expected light_pos.x at offset 208, got %f", got)
	}
	if got := readFloat32(t, data, 224); got != 0.5 {
		t.Errorf("expected light_color.r at offset 224, got %f", got)
	}
	if got := readFloat32(t, data, 232); got != 0.125 {
		t.Errorf("expected light_color.b at offset 232, got %f", got)
	}
}
