package camera

// OrbitRigOption is a functional option for configuring an OrbitRig.
type OrbitRigOption func(*orbitRigImpl)

// WithRadius sets the initial orbit radius (distance from target).
//
// Parameters:
//   - radius: distance from the orbit target
//
// Returns:
//   - OrbitRigOption: functional option to set the radius
func WithRadius(radius float32) OrbitRigOption {
	return func(r *orbitRigImpl) {
		r.radius = radius
	}
}

// WithAzimuth sets the initial horizontal angle around the Y axis.
//
// Parameters:
//   - azimuth: horizontal angle in degrees (0 = +Z axis)
//
// Returns:
//   - OrbitRigOption: functional option to set the azimuth
func WithAzimuth(azimuth float32) OrbitRigOption {
	return func(r *orbitRigImpl) {
		r.azimuth = azimuth
	}
}

// WithPolar sets the initial vertical angle from the horizontal plane.
//
// Parameters:
//   - polar: vertical angle in degrees (0 = horizontal)
//
// Returns:
//   - OrbitRigOption: functional option to set the polar angle
func WithPolar(polar float32) OrbitRigOption {
	return func(r *orbitRigImpl) {
		r.polar = polar
	}
}

// WithTarget sets the look-at/pivot point.
//
// Parameters:
//   - x: X coordinate of the target
//   - y: Y coordinate of the target
//   - z: Z coordinate of the target
//
// Returns:
//   - OrbitRigOption: functional option to set the target position
func WithTarget(x, y, z float32) OrbitRigOption {
	return func(r *orbitRigImpl) {
		r.target[0] = x
		r.target[1] = y
		r.target[2] = z
	}
}

// WithPolarBounds sets the minimum and maximum polar angles.
//
// Parameters:
//   - min: minimum vertical angle in degrees (prevents flipping under the floor)
//   - max: maximum vertical angle in degrees (prevents flipping over the top)
//
// Returns:
//   - OrbitRigOption: functional option to set polar bounds
func WithPolarBounds(min, max float32) OrbitRigOption {
	return func(r *orbitRigImpl) {
		r.minPolar = min
		r.maxPolar = max
	}
}

// WithMouseSensitivity sets the mouse drag sensitivity.
//
// Parameters:
//   - sensitivity: degrees of rotation per pixel of mouse movement
//
// Returns:
//   - OrbitRigOption: functional option to set mouse sensitivity
func WithMouseSensitivity(sensitivity float32) OrbitRigOption {
	return func(r *orbitRigImpl) {
		r.mouseSensitivity = sensitivity
	}
}
