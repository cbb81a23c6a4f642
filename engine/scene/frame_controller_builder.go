package scene

// FrameControllerOption is a functional option applied to a frame controller
// during construction via NewFrameController.
type FrameControllerOption func(*frameController)

// WithLocked sets the initial mouse-lock state. The lock-changed callback does
// not fire for the initial state.
//
// Parameters:
//   - locked: true to start with the mouse locked
//
// Returns:
//   - FrameControllerOption: a function that applies the locked option to a controller
func WithLocked(locked bool) FrameControllerOption {
	return func(c *frameController) {
		c.locked = locked
	}
}

// WithSpinning sets the initial spin state.
//
// Parameters:
//   - spinning: true to start with the cube spinning
//
// Returns:
//   - FrameControllerOption: a function that applies the spinning option to a controller
func WithSpinning(spinning bool) FrameControllerOption {
	return func(c *frameController) {
		c.spinning = spinning
	}
}

// WithMarkerVisible sets the initial light-marker visibility.
//
// Parameters:
//   - visible: true to start with the marker sphere drawn
//
// Returns:
//   - FrameControllerOption: a function that applies the marker option to a controller
func WithMarkerVisible(visible bool) FrameControllerOption {
	return func(c *frameController) {
		c.marker = visible
	}
}

// WithLockChangedCallback sets the function called whenever the mouse-lock flag
// flips, receiving the new state. Used to drive the window cursor mode.
//
// Parameters:
//   - callback: function receiving the new lock state
//
// Returns:
//   - FrameControllerOption: a function that applies the callback option to a controller
func WithLockChangedCallback(callback func(locked bool)) FrameControllerOption {
	return func(c *frameController) {
		c.onLockChanged = callback
	}
}
