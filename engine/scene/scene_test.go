package scene

import (
	"errors"
	"slices"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/moonlit-edelweiss/orbitlight/common"
	"github.com/moonlit-edelweiss/orbitlight/engine/camera"
	"github.com/moonlit-edelweiss/orbitlight/engine/light"
	"github.com/moonlit-edelweiss/orbitlight/engine/renderer"
	"github.com/moonlit-edelweiss/orbitlight/engine/renderer/bind_group_provider"
	"github.com/moonlit-edelweiss/orbitlight/engine/renderer/pipeline"
	"github.com/moonlit-edelweiss/orbitlight/engine/window"
)

// stubWindow records input callbacks and cursor lock changes without GLFW.
type stubWindow struct {
	keyDown     func(keyCode uint32)
	keyUp       func(keyCode uint32)
	scroll      func(delta float32)
	mouseMove   func(x, y float64)
	lockHistory []bool
}

var _ window.Window = &stubWindow{}

func (w *stubWindow) SetUpdateCallback(func())                   {}
func (w *stubWindow) SetScrollCallback(cb func(delta float32))   { w.scroll = cb }
func (w *stubWindow) SetKeyDownCallback(cb func(keyCode uint32)) { w.keyDown = cb }
func (w *stubWindow) SetKeyUpCallback(cb func(keyCode uint32))   { w.keyUp = cb }
func (w *stubWindow) SetMouseMoveCallback(cb func(x, y float64)) { w.mouseMove = cb }
func (w *stubWindow) SetCursorLocked(locked bool) {
	w.lockHistory = append(w.lockHistory, locked)
}

func (w *stubWindow) CursorLocked() bool {
	return len(w.lockHistory) > 0 && w.lockHistory[len(w.lockHistory)-1]
}

func (w *stubWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor { return nil }
func (w *stubWindow) IsRunning() bool                            { return false }
func (w *stubWindow) Close() error                               { return nil }
func (w *stubWindow) ProcessMessages()                           {}
func (w *stubWindow) Width() int                                 { return 64 }
func (w *stubWindow) Height() int                                { return 32 }

// stubRenderer records GPU calls so scene wiring can be verified without a device.
type stubRenderer struct {
	registeredKeys   []string
	meshProviders    []string
	bindGroups       []string
	textureInits     int
	samplerInits     int
	textureUpdates   int
	updateTextureErr error
	bufferWrites     [][]bind_group_provider.BufferWrite
	drawOrder        []string
}

var _ renderer.Renderer = &stubRenderer{}

func (r *stubRenderer) Resize(width, height int)                            {}
func (r *stubRenderer) SetPresentMode(mode renderer.PresentMode)            {}
func (r *stubRenderer) Pipeline(key string) pipeline.Pipeline               { return nil }
func (r *stubRenderer) Pipelines() map[string]pipeline.Pipeline             { return nil }
func (r *stubRenderer) SetPipeline(key string, p pipeline.Pipeline)         {}
func (r *stubRenderer) SetPipelines(pipelines map[string]pipeline.Pipeline) {}

func (r *stubRenderer) RegisterPipelines(pipelines ...pipeline.Pipeline) error {
	for _, p := range pipelines {
		r.registeredKeys = append(r.registeredKeys, p.PipelineKey())
	}
	return nil
}

func (r *stubRenderer) InitMeshBuffers(provider bind_group_provider.BindGroupProvider, vertexData, indexData []byte, indexCount int) error {
	r.meshProviders = append(r.meshProviders, provider.Label())
	return nil
}

func (r *stubRenderer) InitBindGroup(provider bind_group_provider.BindGroupProvider, descriptor wgpu.BindGroupLayoutDescriptor, bufferUsageOverrides map[int]wgpu.BufferUsage, bufferSizeOverrides map[int]uint64) error {
	r.bindGroups = append(r.bindGroups, provider.Label())
	return nil
}

func (r *stubRenderer) InitTextureView(provider bind_group_provider.BindGroupProvider, bindingKey int, stagingData common.TextureStagingData) error {
	r.textureInits++
	return nil
}

func (r *stubRenderer) UpdateTexture(provider bind_group_provider.BindGroupProvider, bindingKey int, stagingData common.TextureStagingData) error {
	r.textureUpdates++
	return r.updateTextureErr
}

func (r *stubRenderer) InitSampler(provider bind_group_provider.BindGroupProvider, bindingKey int, samplerStagingData common.SamplerStagingData) error {
	r.samplerInits++
	return nil
}

func (r *stubRenderer) WriteBuffers(writes []bind_group_provider.BufferWrite) {
	r.bufferWrites = append(r.bufferWrites, writes)
}

func (r *stubRenderer) BeginFrame() error { return nil }

func (r *stubRenderer) DrawCall(pipelineKey string, meshProvider bind_group_provider.BindGroupProvider, instanceCount uint32, bindGroups []bind_group_provider.BindGroupProvider) error {
	r.drawOrder = append(r.drawOrder, pipelineKey)
	return nil
}

func (r *stubRenderer) EndFrame() {}
func (r *stubRenderer) Present()  {}

func newTestScene(t *testing.T) (Scene, *stubRenderer, *stubWindow) {
	t.Helper()
	r := &stubRenderer{}
	w := &stubWindow{}
	cam := camera.NewCamera(camera.WithRig(camera.NewOrbitRig()))
	lgt := light.NewLight(light.WithPosition(2, 4, 2))
	s := NewScene("test", cam, lgt, r, w, WithBuildWorkers(1))
	return s, r, w
}

func TestSceneInitCreatesResources(t *testing.T) {
	s, r, _ := newTestScene(t)
	if err := s.Init(); err != nil {
		t.Fatalf("Init returned error: %v", err)
	}

	wantKeys := []string{pipelineKeyCubeLit, pipelineKeyMarkerUnlit, pipelineKeyGridLines, pipelineKeyOverlayText}
	for _, key := range wantKeys {
		if !slices.Contains(r.registeredKeys, key) {
			t.Errorf("pipeline %q not registered", key)
		}
	}

	// Three meshes plus the overlay quad.
	if got := len(r.meshProviders); got != 4 {
		t.Errorf("mesh buffer inits = %d, want 4", got)
	}
	if got := len(r.bindGroups); got != 4 {
		t.Errorf("bind group inits = %d, want 4", got)
	}
	if r.textureInits != 1 || r.samplerInits != 1 {
		t.Errorf("overlay texture/sampler inits = %d/%d, want 1/1", r.textureInits, r.samplerInits)
	}
}

func TestSceneDrawOrder(t *testing.T) {
	s, r, _ := newTestScene(t)
	if err := s.Init(); err != nil {
		t.Fatalf("Init returned error: %v", err)
	}

	if err := s.DrawCalls(); err != nil {
		t.Fatalf("DrawCalls returned error: %v", err)
	}
	want := []string{pipelineKeyCubeLit, pipelineKeyMarkerUnlit, pipelineKeyGridLines, pipelineKeyOverlayText}
	if !slices.Equal(r.drawOrder, want) {
		t.Errorf("draw order = %v, want %v", r.drawOrder, want)
	}

	// With the marker hidden its draw call is skipped.
	s.Controller().Advance(0, InputSample{ToggleMarker: true})
	r.drawOrder = nil
	if err := s.DrawCalls(); err != nil {
		t.Fatalf("DrawCalls returned error: %v", err)
	}
	want = []string{pipelineKeyCubeLit, pipelineKeyGridLines, pipelineKeyOverlayText}
	if !slices.Equal(r.drawOrder, want) {
		t.Errorf("draw order with marker hidden = %v, want %v", r.drawOrder, want)
	}
}

func TestSceneUpdateWritesUniforms(t *testing.T) {
	s, r, _ := newTestScene(t)
	if err := s.Init(); err != nil {
		t.Fatalf("Init returned error: %v", err)
	}

	s.Update(0.016, 60)
	if got := len(r.bufferWrites); got != 1 {
		t.Fatalf("WriteBuffers calls = %d, want 1", got)
	}
	writes := r.bufferWrites[0]
	if got := len(writes); got != 3 {
		t.Fatalf("buffer writes per frame = %d, want 3", got)
	}
	for _, w := range writes {
		if w.Binding != 0 || w.Offset != 0 {
			t.Errorf("write targets binding %d offset %d, want 0/0", w.Binding, w.Offset)
		}
		if got := len(w.Data); got != SceneUniformSize {
			t.Errorf("uniform write size = %d, want %d", got, SceneUniformSize)
		}
	}

	// Status text changed from the initial blank, so the overlay re-uploads once.
	if r.textureUpdates != 1 {
		t.Errorf("texture updates after first frame = %d, want 1", r.textureUpdates)
	}

	// An identical status produces no second upload.
	s.Update(0.016, 60)
	if r.textureUpdates != 1 {
		t.Errorf("texture updates after unchanged frame = %d, want 1", r.textureUpdates)
	}
}

func TestSceneUpdateSurvivesOverlayUploadFailure(t *testing.T) {
	s, r, _ := newTestScene(t)
	if err := s.Init(); err != nil {
		t.Fatalf("Init returned error: %v", err)
	}

	r.updateTextureErr = errors.New("device lost")
	s.Update(0.016, 60)

	// The frame's uniform writes still landed despite the failed upload.
	if got := len(r.bufferWrites); got != 1 {
		t.Errorf("WriteBuffers calls = %d, want 1", got)
	}
	if r.textureUpdates != 1 {
		t.Errorf("texture updates = %d, want 1", r.textureUpdates)
	}
}

func TestSceneLockKeyDrivesCursor(t *testing.T) {
	s, _, w := newTestScene(t)

	// Construction pushes the initial unlocked state to the window.
	if !slices.Equal(w.lockHistory, []bool{false}) {
		t.Fatalf("lock history after construction = %v, want [false]", w.lockHistory)
	}

	if err := s.Init(); err != nil {
		t.Fatalf("Init returned error: %v", err)
	}

	w.keyDown(common.KeyL)
	s.Update(0.016, 0)
	if !w.CursorLocked() {
		t.Error("expected cursor locked after pressing L")
	}

	w.keyUp(common.KeyL)
	w.keyDown(common.KeyL)
	s.Update(0.016, 0)
	if w.CursorLocked() {
		t.Error("expected cursor unlocked after pressing L again")
	}
}
