package shader

import "github.com/cogentcore/webgpu/wgpu"

// ShaderBuilderOption is a functional option applied to a shader during construction via NewShader.
type ShaderBuilderOption func(*shader)

// WithEntryPoint overrides the default entry point name.
//
// Parameters:
//   - entryPoint: the function name in the WGSL source to use as the entry point
//
// Returns:
//   - ShaderBuilderOption: a function that sets the entry point on a shader
func WithEntryPoint(entryPoint string) ShaderBuilderOption {
	return func(s *shader) {
		s.entryPoint = entryPoint
	}
}

// WithBindGroupLayout declares the bind group layout for a group index.
// The entries must match the @group declarations in the WGSL source.
//
// Parameters:
//   - group: the bind group index
//   - desc: the layout descriptor for the group
//
// Returns:
//   - ShaderBuilderOption: a function that registers the layout on a shader
func WithBindGroupLayout(group int, desc wgpu.BindGroupLayoutDescriptor) ShaderBuilderOption {
	return func(s *shader) {
		s.bindGroupLayoutDescriptors[group] = desc
	}
}

// WithVertexLayout declares the vertex buffer layouts for a buffer slot.
// The attributes must match the @location declarations in the WGSL vertex input.
//
// Parameters:
//   - slot: the vertex buffer slot index
//   - layouts: the buffer layouts bound at that slot
//
// Returns:
//   - ShaderBuilderOption: a function that registers the layouts on a shader
func WithVertexLayout(slot int, layouts ...wgpu.VertexBufferLayout) ShaderBuilderOption {
	return func(s *shader) {
		s.vertexLayouts[slot] = layouts
	}
}
