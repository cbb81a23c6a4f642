package overlay

import "image/color"

// OverlayBuilderOption is a functional option applied to an overlay during construction via NewOverlay.
type OverlayBuilderOption func(*overlayImpl)

// WithHelpLines sets the fixed help lines drawn above the status line.
//
// Parameters:
//   - lines: the help lines, drawn top to bottom
//
// Returns:
//   - OverlayBuilderOption: a function that applies the help lines option to an overlay
func WithHelpLines(lines ...string) OverlayBuilderOption {
	return func(o *overlayImpl) {
		o.helpLines = lines
	}
}

// WithStatus sets the initial dynamic status line.
//
// Parameters:
//   - status: the initial status line text
//
// Returns:
//   - OverlayBuilderOption: a function that applies the status option to an overlay
func WithStatus(status string) OverlayBuilderOption {
	return func(o *overlayImpl) {
		o.status = status
	}
}

// WithTextColor sets the text color used for all overlay lines.
//
// Parameters:
//   - c: the RGBA text color
//
// Returns:
//   - OverlayBuilderOption: a function that applies the text color option to an overlay
func WithTextColor(c color.RGBA) OverlayBuilderOption {
	return func(o *overlayImpl) {
		o.textColor = c
	}
}
