package mesh

import (
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
)

// Vertex is the GPU-aligned vertex format shared by every mesh in the engine.
// Matches the WGSL VertexInput struct layout exactly.
// Size: 40 bytes (10 × f32).
type Vertex struct {
	Position [3]float32 // offset  0: world-space position (vec3<f32>)
	Normal   [3]float32 // offset 12: surface normal (vec3<f32>)
	Color    [4]float32 // offset 24: vertex color RGBA (vec4<f32>)
}

// Size returns the size of the Vertex struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (40)
func (v *Vertex) Size() int {
	return int(unsafe.Sizeof(*v))
}

// Marshal serializes the Vertex struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (v *Vertex) Marshal() []byte {
	buf := make([]byte, v.Size())
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v.Position[i]))
	}
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[12+i*4:], math.Float32bits(v.Normal[i]))
	}
	for i := range 4 {
		binary.LittleEndian.PutUint32(buf[24+i*4:], math.Float32bits(v.Color[i]))
	}
	return buf
}

// VertexBufferLayout returns the wgpu vertex buffer layout describing the
// Vertex struct for render pipeline creation. Shader locations: 0 = position,
// 1 = normal, 2 = color.
//
// Returns:
//   - []wgpu.VertexBufferLayout: single-buffer layout for slot 0
func VertexBufferLayout() []wgpu.VertexBufferLayout {
	return []wgpu.VertexBufferLayout{
		{
			ArrayStride: uint64(unsafe.Sizeof(Vertex{})),
			StepMode:    wgpu.VertexStepModeVertex,
			Attributes: []wgpu.VertexAttribute{
				{ShaderLocation: 0, Offset: 0, Format: wgpu.VertexFormatFloat32x3},
				{ShaderLocation: 1, Offset: 12, Format: wgpu.VertexFormatFloat32x3},
				{ShaderLocation: 2, Offset: 24, Format: wgpu.VertexFormatFloat32x4},
			},
		},
	}
}
