package light

import (
	"sync"

	"github.com/moonlit-edelweiss/orbitlight/common"
)

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	mu *sync.Mutex

	position  [3]float32
	color     [3]uint8
	minHeight float32
	maxHeight float32
}

// Light defines the interface for a point light source in the scene.
//
// The light contributes to the final pixel color during the lit forward
// rendering pass. Its color is stored as 8-bit RGB channels and normalized
// to [0, 1] floats when marshaled into the scene uniform. Only the vertical
// component of the position is mutable at runtime, and it is clamped to the
// light's configured height bounds.
type Light interface {
	// Position returns the world-space position of the light.
	//
	// Returns:
	//   - [3]float32: position as (x, y, z)
	Position() [3]float32

	// Height returns the vertical (Y) component of the light's position.
	//
	// Returns:
	//   - float32: the current height
	Height() float32

	// AddHeight offsets the light's height by delta, clamped to the
	// configured height bounds.
	//
	// Parameters:
	//   - delta: signed height offset
	AddHeight(delta float32)

	// MinHeight returns the lower height bound.
	//
	// Returns:
	//   - float32: minimum allowed height
	MinHeight() float32

	// MaxHeight returns the upper height bound.
	//
	// Returns:
	//   - float32: maximum allowed height
	MaxHeight() float32

	// Color returns the 8-bit RGB color of the light.
	//
	// Returns:
	//   - [3]uint8: color as (r, g, b)
	Color() [3]uint8

	// NormalizedColor returns the light color with each channel scaled
	// to the [0, 1] range for shader consumption.
	//
	// Returns:
	//   - [3]float32: normalized color as (r, g, b)
	NormalizedColor() [3]float32

	// SetPosition sets the world-space position of the light.
	// The vertical component is clamped to the height bounds.
	//
	// Parameters:
	//   - x, y, z: position components
	SetPosition(x, y, z float32)

	// SetColor sets the 8-bit RGB color of the light.
	//
	// Parameters:
	//   - r, g, b: color channels
	SetColor(r, g, b uint8)
}

var _ Light = &lightImpl{}

// NewLight creates a new point light with sensible defaults and any provided
// options applied.
//
// Parameters:
//   - opts: variadic list of LightBuilderOption functions to configure the light
//
// Returns:
//   - Light: a new Light instance
func NewLight(opts ...LightBuilderOption) Light {
	l := &lightImpl{
		mu:        &sync.Mutex{},
		position:  [3]float32{0, 2, 0},
		color:     [3]uint8{255, 255, 255},
		minHeight: -5.0,
		maxHeight: 10.0,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.position[1] = common.Clamp(l.position[1], l.minHeight, l.maxHeight)
	return l
}

func (l *lightImpl) Position() [3]float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.position
}

func (l *lightImpl) Height() float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.position[1]
}

func (l *lightImpl) AddHeight(delta float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.position[1] = common.Clamp(l.position[1]+delta, l.minHeight, l.maxHeight)
}

func (l *lightImpl) MinHeight() float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.minHeight
}

func (l *lightImpl) MaxHeight() float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.maxHeight
}

func (l *lightImpl) Color() [3]uint8 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.color
}

func (l *lightImpl) NormalizedColor() [3]float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return [3]float32{
		float32(l.color[0]) / 255.0,
		float32(l.color[1]) / 255.0,
		float32(l.color[2]) / 255.0,
	}
}

func (l *lightImpl) SetPosition(x, y, z float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.position[0] = x
	l.position[1] = common.Clamp(y, l.minHeight, l.maxHeight)
	l.position[2] = z
}

func (l *lightImpl) SetColor(r, g, b uint8) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.color = [3]uint8{r, g, b}
}
