package scene

import (
	_ "embed"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/moonlit-edelweiss/orbitlight/engine/mesh"
	"github.com/moonlit-edelweiss/orbitlight/engine/overlay"
	"github.com/moonlit-edelweiss/orbitlight/engine/renderer/shader"
)

//go:embed assets/lit.wgsl
var litWGSL string

//go:embed assets/unlit.wgsl
var unlitWGSL string

//go:embed assets/overlay.wgsl
var overlayWGSL string

// Pipeline keys registered by the scene.
const (
	pipelineKeyCubeLit     = "cube_lit"
	pipelineKeyMarkerUnlit = "marker_unlit"
	pipelineKeyGridLines   = "grid_lines"
	pipelineKeyOverlayText = "overlay_text"
)

// sceneUniformLayout describes group(0) of the lit and unlit shaders: a single
// SceneUniform buffer visible to both stages.
func sceneUniformLayout() wgpu.BindGroupLayoutDescriptor {
	return wgpu.BindGroupLayoutDescriptor{
		Label: "scene_uniform_layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: SceneUniformSize,
				},
			},
		},
	}
}

// overlayTextureLayout describes group(0) of the overlay shader: the text
// texture and its sampler, fragment-stage only.
func overlayTextureLayout() wgpu.BindGroupLayoutDescriptor {
	return wgpu.BindGroupLayoutDescriptor{
		Label: "overlay_texture_layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageFragment,
				Texture: wgpu.TextureBindingLayout{
					SampleType:    wgpu.TextureSampleTypeFloat,
					ViewDimension: wgpu.TextureViewDimension2D,
				},
			},
			{
				Binding:    1,
				Visibility: wgpu.ShaderStageFragment,
				Sampler: wgpu.SamplerBindingLayout{
					Type: wgpu.SamplerBindingTypeFiltering,
				},
			},
		},
	}
}

// newLitVertexShader builds the lit vertex shader with the mesh vertex layout.
func newLitVertexShader() shader.Shader {
	return shader.NewShader("lit_vert", shader.ShaderTypeVertex, litWGSL,
		shader.WithBindGroupLayout(0, sceneUniformLayout()),
		shader.WithVertexLayout(0, mesh.VertexBufferLayout()...),
	)
}

// newLitFragmentShader builds the lit fragment shader.
func newLitFragmentShader() shader.Shader {
	return shader.NewShader("lit_frag", shader.ShaderTypeFragment, litWGSL,
		shader.WithBindGroupLayout(0, sceneUniformLayout()),
	)
}

// newUnlitVertexShader builds the unlit vertex shader shared by the marker and grid.
func newUnlitVertexShader() shader.Shader {
	return shader.NewShader("unlit_vert", shader.ShaderTypeVertex, unlitWGSL,
		shader.WithBindGroupLayout(0, sceneUniformLayout()),
		shader.WithVertexLayout(0, mesh.VertexBufferLayout()...),
	)
}

// newUnlitFragmentShader builds the unlit fragment shader.
func newUnlitFragmentShader() shader.Shader {
	return shader.NewShader("unlit_frag", shader.ShaderTypeFragment, unlitWGSL,
		shader.WithBindGroupLayout(0, sceneUniformLayout()),
	)
}

// newOverlayVertexShader builds the overlay vertex shader with the screen quad layout.
func newOverlayVertexShader() shader.Shader {
	return shader.NewShader("overlay_vert", shader.ShaderTypeVertex, overlayWGSL,
		shader.WithBindGroupLayout(0, overlayTextureLayout()),
		shader.WithVertexLayout(0, overlay.VertexBufferLayout()...),
	)
}

// newOverlayFragmentShader builds the overlay fragment shader.
func newOverlayFragmentShader() shader.Shader {
	return shader.NewShader("overlay_frag", shader.ShaderTypeFragment, overlayWGSL,
		shader.WithBindGroupLayout(0, overlayTextureLayout()),
	)
}
