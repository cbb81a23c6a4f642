package renderer

import (
	"fmt"
	"sync"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/moonlit-edelweiss/orbitlight/common"
	"github.com/moonlit-edelweiss/orbitlight/engine/renderer/bind_group_provider"
	"github.com/moonlit-edelweiss/orbitlight/engine/renderer/pipeline"
	"github.com/moonlit-edelweiss/orbitlight/engine/window"
)

// renderer is the implementation of the Renderer interface. It caches pipelines by key
// and delegates all GPU work to its backend.
type renderer struct {
	mu            *sync.Mutex
	pipelineCache map[string]pipeline.Pipeline

	backendType RendererBackendType
	backend     RendererBackend

	forceFallbackAdapter bool
	pendingPresentMode   *PresentMode
	pendingMSAA          *MSAASampleCount
}

// Renderer is the high-level rendering facade. It owns the pipeline cache and the
// GPU backend, and exposes resource initialization, per-frame buffer writes, and
// the BeginFrame/DrawCall/EndFrame/Present cycle.
type Renderer interface {
	// Resize reconfigures the surface and its attachments for a new size.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// SetPresentMode sets the surface present mode. Takes effect on the next surface configuration.
	//
	// Parameters:
	//   - mode: the PresentMode to use (VSync or Uncapped)
	SetPresentMode(mode PresentMode)

	// Pipeline returns the cached Pipeline for the given key, or nil if none is registered.
	//
	// Parameters:
	//   - key: the unique identifier for the pipeline
	//
	// Returns:
	//   - pipeline.Pipeline: the cached pipeline, or nil
	Pipeline(key string) pipeline.Pipeline

	// Pipelines returns the full pipeline cache keyed by pipeline key.
	//
	// Returns:
	//   - map[string]pipeline.Pipeline: the pipeline cache
	Pipelines() map[string]pipeline.Pipeline

	// SetPipeline stores a Pipeline in the cache under the given key, replacing any existing entry.
	//
	// Parameters:
	//   - key: the unique identifier for the pipeline
	//   - p: the Pipeline to cache
	SetPipeline(key string, p pipeline.Pipeline)

	// SetPipelines replaces the entire pipeline cache with the provided map.
	//
	// Parameters:
	//   - pipelines: a map of pipeline keys to their corresponding Pipeline objects
	SetPipelines(pipelines map[string]pipeline.Pipeline)

	// RegisterPipelines creates GPU render pipelines for each provided Pipeline and caches them.
	// Pipelines whose key is already present in the cache are skipped.
	//
	// Parameters:
	//   - pipelines: the Pipeline objects to register
	//
	// Returns:
	//   - error: the first registration error encountered, otherwise nil
	RegisterPipelines(pipelines ...pipeline.Pipeline) error

	// InitMeshBuffers creates and uploads vertex and index buffers for a mesh,
	// storing them on the given BindGroupProvider.
	//
	// Parameters:
	//   - provider: the BindGroupProvider to store the created buffers on
	//   - vertexData: the raw vertex data bytes to upload
	//   - indexData: the raw index data bytes to upload
	//   - indexCount: the number of indices represented in the indexData
	//
	// Returns:
	//   - error: an error if the buffers could not be created, otherwise nil
	InitMeshBuffers(provider bind_group_provider.BindGroupProvider, vertexData, indexData []byte, indexCount int) error

	// InitBindGroup creates GPU buffers and a bind group for the provider based on the
	// given layout descriptor.
	//
	// Parameters:
	//   - provider: the BindGroupProvider describing the layout entries and storage for the bind group
	//   - descriptor: the BindGroupLayoutDescriptor describing the layout of the bind group
	//   - bufferUsageOverrides: a map of binding indices to additional buffer usage flags
	//   - bufferSizeOverrides: a map of binding indices to buffer sizes
	//
	// Returns:
	//   - error: an error if the bind group could not be initialized, otherwise nil
	InitBindGroup(provider bind_group_provider.BindGroupProvider, descriptor wgpu.BindGroupLayoutDescriptor, bufferUsageOverrides map[int]wgpu.BufferUsage, bufferSizeOverrides map[int]uint64) error

	// InitTextureView creates a GPU texture and view from the staging data and stores both on the provider.
	//
	// Parameters:
	//   - provider: the BindGroupProvider to store the created texture and view on
	//   - bindingKey: the integer key identifying the bind group layout entry for this texture
	//   - stagingData: the TextureStagingData containing the raw texture data and metadata
	//
	// Returns:
	//   - error: an error if the texture could not be created, otherwise nil
	InitTextureView(provider bind_group_provider.BindGroupProvider, bindingKey int, stagingData common.TextureStagingData) error

	// UpdateTexture re-uploads pixel data to a texture previously created with InitTextureView.
	// The staging data dimensions must match the original texture.
	//
	// Parameters:
	//   - provider: the BindGroupProvider holding the texture to update
	//   - bindingKey: the integer key identifying the bind group layout entry for the texture
	//   - stagingData: the TextureStagingData containing the new pixel data
	//
	// Returns:
	//   - error: an error if no texture exists at the binding, otherwise nil
	UpdateTexture(provider bind_group_provider.BindGroupProvider, bindingKey int, stagingData common.TextureStagingData) error

	// InitSampler creates a GPU sampler from the staging data and stores it on the provider.
	//
	// Parameters:
	//   - provider: the BindGroupProvider to store the created sampler on
	//   - bindingKey: the integer key identifying the bind group layout entry for this sampler
	//   - samplerStagingData: the SamplerStagingData containing the sampler configuration
	//
	// Returns:
	//   - error: an error if the sampler could not be created, otherwise nil
	InitSampler(provider bind_group_provider.BindGroupProvider, bindingKey int, samplerStagingData common.SamplerStagingData) error

	// WriteBuffers writes all staged buffer writes to the GPU queue.
	//
	// Parameters:
	//   - writes: a slice of BufferWrite structs describing the data to write
	WriteBuffers(writes []bind_group_provider.BufferWrite)

	// BeginFrame acquires the next swapchain texture and begins the main render pass.
	// Must be paired with EndFrame after all DrawCall invocations.
	//
	// Returns:
	//   - error: an error if the swapchain texture could not be acquired
	BeginFrame() error

	// DrawCall encodes a single instanced draw command within the current render pass.
	//
	// Parameters:
	//   - pipelineKey: the key of the cached pipeline to draw with
	//   - meshProvider: the BindGroupProvider holding vertex and index buffers
	//   - instanceCount: the number of instances to draw
	//   - bindGroups: a slice of BindGroupProviders whose BindGroups will be set on the render pass
	//
	// Returns:
	//   - error: an error if the pipeline key is not in the cache, otherwise nil
	DrawCall(pipelineKey string, meshProvider bind_group_provider.BindGroupProvider, instanceCount uint32, bindGroups []bind_group_provider.BindGroupProvider) error

	// EndFrame ends the current render pass and submits the command buffer to the GPU.
	EndFrame()

	// Present presents the rendered frame to the display.
	Present()
}

var _ Renderer = &renderer{}

// NewRenderer is the entry point to create a new Renderer interface. It creates the GPU
// backend for the given backend type, configures the surface to the window's current
// size, and applies any builder options.
//
// Parameters:
//   - backendType: the RendererBackendType selecting the GPU backend
//   - w: the window providing the surface descriptor and dimensions
//   - options: a variadic list of RendererBuilderOption functions to configure the renderer
//
// Returns:
//   - Renderer: the newly created Renderer interface
func NewRenderer(backendType RendererBackendType, w window.Window, options ...RendererBuilderOption) Renderer {
	r := &renderer{
		mu:            &sync.Mutex{},
		pipelineCache: make(map[string]pipeline.Pipeline),
		backendType:   backendType,
	}

	for _, opt := range options {
		opt(r)
	}

	msaa := MSAA4x
	if r.pendingMSAA != nil {
		msaa = *r.pendingMSAA
	}

	switch backendType {
	case BackendTypeWGPU:
		fallthrough
	default:
		r.backend = newWGPURendererBackend(w.SurfaceDescriptor(), r.forceFallbackAdapter, msaa)
	}

	if r.pendingPresentMode != nil {
		r.backend.SetPresentMode(*r.pendingPresentMode)
	}

	r.backend.ConfigureSurface(w.Width(), w.Height())

	return r
}

func (r *renderer) Resize(width, height int) {
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.backend.SetPresentMode(mode)
}

func (r *renderer) Pipeline(key string) pipeline.Pipeline {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pipelineCache[key]
}

func (r *renderer) Pipelines() map[string]pipeline.Pipeline {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pipelineCache
}

func (r *renderer) SetPipeline(key string, p pipeline.Pipeline) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pipelineCache[key] = p
}

func (r *renderer) SetPipelines(pipelines map[string]pipeline.Pipeline) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pipelineCache = pipelines
}

func (r *renderer) RegisterPipelines(pipelines ...pipeline.Pipeline) error {
	for _, p := range pipelines {
		r.mu.Lock()
		_, exists := r.pipelineCache[p.PipelineKey()]
		r.mu.Unlock()
		if exists {
			continue
		}

		if err := r.backend.RegisterRenderPipeline(p); err != nil {
			return err
		}

		r.mu.Lock()
		r.pipelineCache[p.PipelineKey()] = p
		r.mu.Unlock()
	}
	return nil
}

func (r *renderer) InitMeshBuffers(provider bind_group_provider.BindGroupProvider, vertexData, indexData []byte, indexCount int) error {
	return r.backend.InitMeshBuffers(provider, vertexData, indexData, indexCount)
}

func (r *renderer) InitBindGroup(provider bind_group_provider.BindGroupProvider, descriptor wgpu.BindGroupLayoutDescriptor, bufferUsageOverrides map[int]wgpu.BufferUsage, bufferSizeOverrides map[int]uint64) error {
	return r.backend.InitBindGroup(provider, descriptor, bufferUsageOverrides, bufferSizeOverrides)
}

func (r *renderer) InitTextureView(provider bind_group_provider.BindGroupProvider, bindingKey int, stagingData common.TextureStagingData) error {
	return r.backend.InitTextureView(provider, bindingKey, stagingData)
}

func (r *renderer) UpdateTexture(provider bind_group_provider.BindGroupProvider, bindingKey int, stagingData common.TextureStagingData) error {
	return r.backend.UpdateTexture(provider, bindingKey, stagingData)
}

func (r *renderer) InitSampler(provider bind_group_provider.BindGroupProvider, bindingKey int, samplerStagingData common.SamplerStagingData) error {
	return r.backend.InitSampler(provider, bindingKey, samplerStagingData)
}

func (r *renderer) WriteBuffers(writes []bind_group_provider.BufferWrite) {
	r.backend.WriteBuffers(writes)
}

func (r *renderer) BeginFrame() error {
	return r.backend.BeginFrame()
}

func (r *renderer) DrawCall(pipelineKey string, meshProvider bind_group_provider.BindGroupProvider, instanceCount uint32, bindGroups []bind_group_provider.BindGroupProvider) error {
	p := r.Pipeline(pipelineKey)
	if p == nil {
		return fmt.Errorf("render pipeline %q not found in cache", pipelineKey)
	}

	r.backend.DrawCall(p, meshProvider, instanceCount, bindGroups)
	return nil
}

func (r *renderer) EndFrame() {
	r.backend.EndFrame()
}

func (r *renderer) Present() {
	r.backend.Present()
}
