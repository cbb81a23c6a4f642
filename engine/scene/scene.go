package scene

import (
	"fmt"
	"log"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/moonlit-edelweiss/orbitlight/common"
	"github.com/moonlit-edelweiss/orbitlight/engine/camera"
	"github.com/moonlit-edelweiss/orbitlight/engine/light"
	"github.com/moonlit-edelweiss/orbitlight/engine/mesh"
	"github.com/moonlit-edelweiss/orbitlight/engine/overlay"
	"github.com/moonlit-edelweiss/orbitlight/engine/renderer"
	"github.com/moonlit-edelweiss/orbitlight/engine/renderer/bind_group_provider"
	"github.com/moonlit-edelweiss/orbitlight/engine/renderer/pipeline"
	"github.com/moonlit-edelweiss/orbitlight/engine/window"
)

// defaultHelpLines is the fixed control help shown in the overlay.
var defaultHelpLines = []string{
	"L: toggle mouse lock",
	"S: toggle spin",
	"D: toggle light marker",
	"scroll: light height",
	"esc: quit",
}

// Scene owns the drawable set for the demo: the lit cube, the light-marker
// sphere, the reference grid, and the text overlay, together with the frame
// controller that steers camera and light state. Init builds GPU resources,
// Update advances one frame of state, and DrawCalls encodes the frame.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// Camera returns the scene's camera.
	Camera() camera.Camera

	// Renderer returns the scene's renderer.
	Renderer() renderer.Renderer

	// Controller returns the scene's frame controller.
	Controller() FrameController

	// Overlay returns the scene's text overlay.
	Overlay() overlay.Overlay

	// Init builds the meshes and overlay image, registers the render pipelines,
	// and initializes all GPU buffers, textures, and bind groups. Must be called
	// once before the first Update.
	//
	// Returns:
	//   - error: an error if any GPU resource could not be created
	Init() error

	// Update advances one frame: samples buffered input, steps the frame
	// controller, recomputes camera matrices, writes the per-drawable uniform
	// buffers, and refreshes the overlay status text.
	//
	// Parameters:
	//   - dt: elapsed time since the previous frame in seconds
	//   - fps: the most recent frame rate measurement for the status line
	Update(dt float32, fps float64)

	// DrawCalls encodes the frame's draw commands in back-to-front overlay
	// order: cube, marker (when visible), grid, then the overlay quad. Must be
	// called within a BeginFrame/EndFrame block on the renderer.
	//
	// Returns:
	//   - error: error if a draw call fails
	DrawCalls() error
}

// scene is the implementation of the Scene interface.
type scene struct {
	mu *sync.Mutex

	name string

	cam  camera.Camera
	lgt  light.Light
	r    renderer.Renderer
	win  window.Window
	ctrl FrameController

	input *inputCollector
	ovl   overlay.Overlay

	cube   mesh.Mesh
	marker mesh.Mesh
	grid   mesh.Mesh

	cubeColor   [4]float32
	markerColor [4]float32
	gridColor   [4]float32
	axisColor   [4]float32

	// buildPool runs the startup mesh and overlay builds in parallel.
	buildPool    worker.DynamicWorkerPool
	buildWorkers int

	// controllerOpts are applied to the frame controller during construction.
	controllerOpts []FrameControllerOption
}

var _ Scene = &scene{}

// NewScene creates a new Scene wiring the camera's orbit rig and the light into
// a frame controller, and attaching an input collector to the window. All four
// collaborators are required and NewScene panics if any of them is nil.
//
// Parameters:
//   - name: the name of the scene
//   - cam: the camera to attach (must not be nil, must carry an orbit rig)
//   - lgt: the point light to attach (must not be nil)
//   - r: the renderer to attach (must not be nil)
//   - win: the window providing input events and cursor lock (must not be nil)
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, cam camera.Camera, lgt light.Light, r renderer.Renderer, win window.Window, options ...SceneBuilderOption) Scene {
	if cam == nil {
		panic("scene: NewScene requires a non-nil Camera")
	}
	if lgt == nil {
		panic("scene: NewScene requires a non-nil Light")
	}
	if r == nil {
		panic("scene: NewScene requires a non-nil Renderer")
	}
	if win == nil {
		panic("scene: NewScene requires a non-nil Window")
	}

	s := &scene{
		mu:           &sync.Mutex{},
		name:         name,
		cam:          cam,
		lgt:          lgt,
		r:            r,
		win:          win,
		cubeColor:    [4]float32{0.8, 0.3, 0.2, 1},
		markerColor:  [4]float32{1, 1, 0.8, 1},
		gridColor:    [4]float32{0.35, 0.35, 0.35, 1},
		axisColor:    [4]float32{0.6, 0.6, 0.6, 1},
		buildWorkers: max(runtime.NumCPU()-1, 1),
	}

	for _, option := range options {
		option(s)
	}

	s.buildPool = worker.NewDynamicWorkerPool(s.buildWorkers, 16, 1*time.Second)

	s.input = newInputCollector(win)
	s.ovl = overlay.NewOverlay(win.Width(), win.Height(),
		overlay.WithHelpLines(defaultHelpLines...),
	)

	// The cursor mode follows the lock flag; the mouse baseline resets on each
	// flip because the reported coordinate space changes with the cursor mode.
	ctrlOpts := append(s.controllerOpts, WithLockChangedCallback(func(locked bool) {
		win.SetCursorLocked(locked)
		s.input.ResetMouse()
	}))
	s.ctrl = NewFrameController(cam.Rig(), lgt, ctrlOpts...)
	win.SetCursorLocked(s.ctrl.Locked())

	return s
}

func (s *scene) Name() string {
	return s.name
}

func (s *scene) Camera() camera.Camera {
	return s.cam
}

func (s *scene) Renderer() renderer.Renderer {
	return s.r
}

func (s *scene) Controller() FrameController {
	return s.ctrl
}

func (s *scene) Overlay() overlay.Overlay {
	return s.ovl
}

func (s *scene) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Phase 1: build meshes and the initial overlay image in parallel. Each
	// task writes a distinct field, so the WaitGroup is the only sync needed.
	var wg sync.WaitGroup
	var overlayStaging common.TextureStagingData

	builds := []func(){
		func() { s.cube = mesh.NewCube("cube", 2, s.cubeColor) },
		func() { s.marker = mesh.NewUVSphere("marker", 0.15, 12, 24, s.markerColor) },
		func() { s.grid = mesh.NewGrid("grid", 10, 1, s.gridColor, s.axisColor) },
		func() { overlayStaging = s.ovl.StagingData() },
	}
	for i, build := range builds {
		wg.Add(1)
		s.buildPool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				build()
				return nil, nil
			},
		})
	}
	wg.Wait()

	// Phase 2: register the four render pipelines.
	litVert := newLitVertexShader()
	litFrag := newLitFragmentShader()
	unlitVert := newUnlitVertexShader()
	unlitFrag := newUnlitFragmentShader()
	overlayVert := newOverlayVertexShader()
	overlayFrag := newOverlayFragmentShader()

	err := s.r.RegisterPipelines(
		pipeline.NewPipeline(pipelineKeyCubeLit,
			pipeline.WithVertexShader(litVert),
			pipeline.WithFragmentShader(litFrag),
			pipeline.WithCullMode(wgpu.CullModeBack),
		),
		pipeline.NewPipeline(pipelineKeyMarkerUnlit,
			pipeline.WithVertexShader(unlitVert),
			pipeline.WithFragmentShader(unlitFrag),
			pipeline.WithCullMode(wgpu.CullModeBack),
		),
		pipeline.NewPipeline(pipelineKeyGridLines,
			pipeline.WithVertexShader(unlitVert),
			pipeline.WithFragmentShader(unlitFrag),
			pipeline.WithTopology(wgpu.PrimitiveTopologyLineList),
		),
		pipeline.NewPipeline(pipelineKeyOverlayText,
			pipeline.WithVertexShader(overlayVert),
			pipeline.WithFragmentShader(overlayFrag),
			pipeline.WithBlendEnabled(true),
			pipeline.WithDepthTestEnabled(false),
			pipeline.WithDepthWriteEnabled(false),
		),
	)
	if err != nil {
		return fmt.Errorf("scene: failed to register pipelines: %w", err)
	}

	// Phase 3: upload mesh buffers and create the per-drawable uniform bind groups.
	for _, m := range []mesh.Mesh{s.cube, s.marker, s.grid} {
		if err := s.r.InitMeshBuffers(m.Provider(), m.VertexData(), m.IndexData(), int(m.IndexCount())); err != nil {
			return fmt.Errorf("scene: failed to init mesh buffers for %q: %w", m.Name(), err)
		}
		if err := s.r.InitBindGroup(m.Provider(), sceneUniformLayout(), nil, nil); err != nil {
			return fmt.Errorf("scene: failed to init uniform bind group for %q: %w", m.Name(), err)
		}
	}

	// Phase 4: overlay quad buffers, texture, sampler, and bind group.
	if err := s.r.InitMeshBuffers(s.ovl.MeshProvider(), s.ovl.VertexData(), s.ovl.IndexData(), int(s.ovl.IndexCount())); err != nil {
		return fmt.Errorf("scene: failed to init overlay quad buffers: %w", err)
	}
	if err := s.r.InitTextureView(s.ovl.TextureProvider(), 0, overlayStaging); err != nil {
		return fmt.Errorf("scene: failed to init overlay texture: %w", err)
	}
	samplerData := common.SamplerStagingData{
		AddressModeU: wgpu.AddressModeClampToEdge,
		AddressModeV: wgpu.AddressModeClampToEdge,
		AddressModeW: wgpu.AddressModeClampToEdge,
	}
	if err := s.r.InitSampler(s.ovl.TextureProvider(), 1, samplerData); err != nil {
		return fmt.Errorf("scene: failed to init overlay sampler: %w", err)
	}
	if err := s.r.InitBindGroup(s.ovl.TextureProvider(), overlayTextureLayout(), nil, nil); err != nil {
		return fmt.Errorf("scene: failed to init overlay bind group: %w", err)
	}

	return nil
}

func (s *scene) Update(dt float32, fps float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	in := s.input.Sample()
	s.ctrl.Advance(dt, in)
	s.cam.Update()

	view := s.cam.ViewMatrix()
	proj := s.cam.ProjectionMatrix()
	eyeX, eyeY, eyeZ := s.ctrl.Rig().Position()
	lightPos := s.lgt.Position()
	lightColor := s.lgt.NormalizedColor()

	uniform := SceneUniform{
		View:       view,
		Proj:       proj,
		ViewPos:    [3]float32{eyeX, eyeY, eyeZ},
		LightPos:   lightPos,
		LightColor: lightColor,
	}

	// Cube spins about a fixed tilted axis.
	common.AxisAngle(uniform.Model[:], 0.5, 1, 0, common.Deg2Rad(s.ctrl.RotationDegrees()))
	cubeData := uniform.Marshal()

	// Marker follows the light.
	common.Translation(uniform.Model[:], lightPos[0], lightPos[1], lightPos[2])
	markerData := uniform.Marshal()

	// Grid stays at the origin.
	common.Identity(uniform.Model[:])
	gridData := uniform.Marshal()

	s.r.WriteBuffers([]bind_group_provider.BufferWrite{
		{Provider: s.cube.Provider(), Binding: 0, Offset: 0, Data: cubeData},
		{Provider: s.marker.Provider(), Binding: 0, Offset: 0, Data: markerData},
		{Provider: s.grid.Provider(), Binding: 0, Offset: 0, Data: gridData},
	})

	s.ovl.SetStatus(fmt.Sprintf("lock %s | spin %s | light height %.1f | fps %.0f",
		onOff(s.ctrl.Locked()), onOff(s.ctrl.Spinning()), s.lgt.Height(), fps))
	if s.ovl.Dirty() {
		// Re-upload only when the text changed; the bind group stays valid
		// because the texture object itself is reused.
		if err := s.r.UpdateTexture(s.ovl.TextureProvider(), 0, s.ovl.StagingData()); err != nil {
			log.Printf("scene: overlay texture update failed: %v", err)
		}
	}
}

func (s *scene) DrawCalls() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.r.DrawCall(pipelineKeyCubeLit, s.cube.Provider(), 1, []bind_group_provider.BindGroupProvider{s.cube.Provider()}); err != nil {
		return err
	}
	if s.ctrl.MarkerVisible() {
		if err := s.r.DrawCall(pipelineKeyMarkerUnlit, s.marker.Provider(), 1, []bind_group_provider.BindGroupProvider{s.marker.Provider()}); err != nil {
			return err
		}
	}
	if err := s.r.DrawCall(pipelineKeyGridLines, s.grid.Provider(), 1, []bind_group_provider.BindGroupProvider{s.grid.Provider()}); err != nil {
		return err
	}
	// Overlay draws last so it blends over the 3D content.
	return s.r.DrawCall(pipelineKeyOverlayText, s.ovl.MeshProvider(), 1, []bind_group_provider.BindGroupProvider{s.ovl.TextureProvider()})
}

// onOff formats a toggle flag for the status line.
func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
