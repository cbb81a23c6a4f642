package scene

import (
	"encoding/binary"
	"math"
)

// SceneUniformSize is the marshaled size of SceneUniform in bytes. Each vec3 is
// padded to 16 bytes to satisfy WGSL uniform alignment rules.
const SceneUniformSize = 240

// SceneUniform is the per-drawable uniform block consumed by the lit and unlit
// shaders at group(0) binding(0). Matrices are column-major.
type SceneUniform struct {
	Model      [16]float32
	View       [16]float32
	Proj       [16]float32
	ViewPos    [3]float32
	LightPos   [3]float32
	LightColor [3]float32
}

// Marshal serializes the uniform into its 240-byte GPU layout: three mat4x4
// matrices followed by three vec3 fields each padded to 16 bytes.
//
// Returns:
//   - []byte: the little-endian uniform data, SceneUniformSize bytes long
func (u *SceneUniform) Marshal() []byte {
	buf := make([]byte, SceneUniformSize)

	writeMat := func(offset int, m [16]float32) {
		for i, v := range m {
			binary.LittleEndian.PutUint32(buf[offset+i*4:], math.Float32bits(v))
		}
	}
	writeVec := func(offset int, v [3]float32) {
		for i, f := range v {
			binary.LittleEndian.PutUint32(buf[offset+i*4:], math.Float32bits(f))
		}
	}

	writeMat(0, u.Model)
	writeMat(64, u.View)
	writeMat(128, u.Proj)
	writeVec(192, u.ViewPos)
	writeVec(208, u.LightPos)
	writeVec(224, u.LightColor)

	return buf
}
