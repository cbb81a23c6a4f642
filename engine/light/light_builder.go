package light

// LightBuilderOption is a functional option for configuring a Light during construction.
type LightBuilderOption func(*lightImpl)

// WithPosition sets the initial world-space position of the light.
//
// Parameters:
//   - x, y, z: position components
//
// Returns:
//   - LightBuilderOption: functional option to set the position
func WithPosition(x, y, z float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.position = [3]float32{x, y, z}
	}
}

// WithColor sets the 8-bit RGB color of the light.
//
// Parameters:
//   - r, g, b: color channels
//
// Returns:
//   - LightBuilderOption: functional option to set the color
func WithColor(r, g, b uint8) LightBuilderOption {
	return func(l *lightImpl) {
		l.color = [3]uint8{r, g, b}
	}
}

// WithHeightBounds sets the minimum and maximum allowed light height.
// The initial position is clamped against these bounds once all options
// have been applied.
//
// Parameters:
//   - min: lower height bound
//   - max: upper height bound
//
// Returns:
//   - LightBuilderOption: functional option to set the height bounds
func WithHeightBounds(min, max float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.minHeight = min
		l.maxHeight = max
	}
}
