package overlay

import (
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/moonlit-edelweiss/orbitlight/common"
	"github.com/moonlit-edelweiss/orbitlight/engine/renderer/bind_group_provider"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	// textMarginX is the left margin of the text block in pixels.
	textMarginX = 10

	// textBaselineY is the baseline of the first text line in pixels.
	textBaselineY = 20

	// textLineHeight is the vertical distance between line baselines in pixels.
	textLineHeight = 16
)

// Overlay rasterizes a block of help text plus a single dynamic status line into
// an RGBA image matching the window size, for display as an alpha-blended
// screen-space quad. The image is re-rasterized lazily when the status changes.
// Thread-safe for concurrent access.
type Overlay interface {
	// Width returns the overlay image width in pixels.
	Width() int

	// Height returns the overlay image height in pixels.
	Height() int

	// HelpLines returns the fixed help lines drawn above the status line.
	HelpLines() []string

	// Status returns the current dynamic status line.
	Status() string

	// SetStatus replaces the dynamic status line. Marks the overlay dirty when
	// the text actually changed.
	//
	// Parameters:
	//   - status: the new status line text
	SetStatus(status string)

	// Dirty reports whether the overlay image needs re-uploading to the GPU.
	//
	// Returns:
	//   - bool: true if StagingData would return fresh pixel data
	Dirty() bool

	// StagingData rasterizes the text (if dirty) and returns the pixel data for
	// GPU upload. Clears the dirty flag.
	//
	// Returns:
	//   - common.TextureStagingData: the RGBA pixels plus dimensions
	StagingData() common.TextureStagingData

	// VertexData returns the screen-covering quad vertices (NDC position + UV)
	// as raw bytes for the vertex buffer.
	//
	// Returns:
	//   - []byte: the quad vertex data
	VertexData() []byte

	// IndexData returns the quad's triangle indices as raw little-endian bytes.
	//
	// Returns:
	//   - []byte: the quad index data
	IndexData() []byte

	// IndexCount returns the number of indices in IndexData.
	//
	// Returns:
	//   - uint32: the index count (6 for the quad)
	IndexCount() uint32

	// MeshProvider returns the bind group provider holding the quad's vertex and
	// index buffers.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the quad mesh provider
	MeshProvider() bind_group_provider.BindGroupProvider

	// TextureProvider returns the bind group provider holding the overlay texture
	// and sampler.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the texture bind group provider
	TextureProvider() bind_group_provider.BindGroupProvider
}

// overlayImpl is the implementation of the Overlay interface.
type overlayImpl struct {
	mu *sync.Mutex

	width     int
	height    int
	helpLines []string
	status    string
	textColor color.RGBA

	dirty bool
	img   *image.RGBA
	face  font.Face

	meshProvider    bind_group_provider.BindGroupProvider
	textureProvider bind_group_provider.BindGroupProvider
}

var _ Overlay = &overlayImpl{}

// NewOverlay creates a new Overlay sized to the given window dimensions.
// The overlay starts dirty so the first StagingData call produces the initial image.
//
// Parameters:
//   - width: overlay image width in pixels (should match the window)
//   - height: overlay image height in pixels (should match the window)
//   - opts: a variadic list of OverlayBuilderOption functions to configure the overlay
//
// Returns:
//   - Overlay: the newly created Overlay interface
func NewOverlay(width, height int, opts ...OverlayBuilderOption) Overlay {
	o := &overlayImpl{
		mu:              &sync.Mutex{},
		width:           width,
		height:          height,
		textColor:       color.RGBA{R: 255, G: 255, B: 255, A: 255},
		dirty:           true,
		img:             image.NewRGBA(image.Rect(0, 0, width, height)),
		face:            basicfont.Face7x13,
		meshProvider:    bind_group_provider.NewBindGroupProvider("overlay_quad"),
		textureProvider: bind_group_provider.NewBindGroupProvider("overlay_text"),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *overlayImpl) Width() int {
	return o.width
}

func (o *overlayImpl) Height() int {
	return o.height
}

func (o *overlayImpl) HelpLines() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]string, len(o.helpLines))
	copy(out, o.helpLines)
	return out
}

func (o *overlayImpl) Status() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.status
}

func (o *overlayImpl) SetStatus(status string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.status == status {
		return
	}
	o.status = status
	o.dirty = true
}

func (o *overlayImpl) Dirty() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.dirty
}

func (o *overlayImpl) StagingData() common.TextureStagingData {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.dirty {
		o.rasterize()
		o.dirty = false
	}

	return common.TextureStagingData{
		Pixels: o.img.Pix,
		Width:  uint32(o.width),
		Height: uint32(o.height),
	}
}

// rasterize redraws the help lines and status line into the image buffer.
// Caller must hold o.mu.
func (o *overlayImpl) rasterize() {
	// Clear to fully transparent so only the glyphs blend over the scene.
	draw.Draw(o.img, o.img.Bounds(), image.Transparent, image.Point{}, draw.Src)

	d := font.Drawer{
		Dst:  o.img,
		Src:  image.NewUniform(o.textColor),
		Face: o.face,
	}

	y := textBaselineY
	for _, line := range o.helpLines {
		d.Dot = fixed.P(textMarginX, y)
		d.DrawString(line)
		y += textLineHeight
	}
	if o.status != "" {
		d.Dot = fixed.P(textMarginX, y)
		d.DrawString(o.status)
	}
}

func (o *overlayImpl) VertexData() []byte {
	// Screen-covering quad in NDC with UVs flipped vertically so image row 0
	// (top of the rasterized text) lands at the top of the screen.
	quad := []float32{
		// x, y, u, v
		-1, -1, 0, 1,
		1, -1, 1, 1,
		1, 1, 1, 0,
		-1, 1, 0, 0,
	}
	return common.SliceToBytes(quad)
}

func (o *overlayImpl) IndexData() []byte {
	indices := []uint32{0, 1, 2, 0, 2, 3}
	return common.SliceToBytes(indices)
}

func (o *overlayImpl) IndexCount() uint32 {
	return 6
}

func (o *overlayImpl) MeshProvider() bind_group_provider.BindGroupProvider {
	return o.meshProvider
}

func (o *overlayImpl) TextureProvider() bind_group_provider.BindGroupProvider {
	return o.textureProvider
}

// VertexBufferLayout returns the vertex buffer layout for the overlay quad:
// a 2D NDC position at location 0 and a UV coordinate at location 1.
//
// Returns:
//   - []wgpu.VertexBufferLayout: the layout slice for pipeline creation
func VertexBufferLayout() []wgpu.VertexBufferLayout {
	return []wgpu.VertexBufferLayout{
		{
			ArrayStride: 16,
			StepMode:    wgpu.VertexStepModeVertex,
			Attributes: []wgpu.VertexAttribute{
				{
					Format:         wgpu.VertexFormatFloat32x2,
					Offset:         0,
					ShaderLocation: 0,
				},
				{
					Format:         wgpu.VertexFormatFloat32x2,
					Offset:         8,
					ShaderLocation: 1,
				},
			},
		},
	}
}
