package camera

import (
	"math"
	"sync"

	"github.com/moonlit-edelweiss/orbitlight/common"
)

// orbitRigImpl holds spherical coordinates around a pivot point and derives
// the camera's world position from them. All angles are stored in degrees
// and converted to radians only when the Cartesian position is recomputed.
type orbitRigImpl struct {
	mu *sync.Mutex

	// Camera position (computed from target + spherical coords)
	position [3]float32
	target   [3]float32

	// Spherical coordinates (offset from target)
	radius  float32
	azimuth float32 // Horizontal angle around the Y axis, degrees
	polar   float32 // Vertical angle from the horizontal plane, degrees

	// Polar constraints
	minPolar float32
	maxPolar float32

	// Mouse drag sensitivity in degrees per pixel
	mouseSensitivity float32
}

// OrbitRig defines the interface for the orbit camera rig.
// The rig owns positional state (position, target, spherical angles); the
// Camera reads from the rig and computes view/projection matrices. Angles
// are expressed in degrees.
type OrbitRig interface {
	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - x, y, z: world-space camera position
	Position() (x, y, z float32)

	// Target returns the look-at/pivot point.
	//
	// Returns:
	//   - x, y, z: world-space target position
	Target() (x, y, z float32)

	// SetTarget sets the look-at/pivot point and recomputes position from
	// spherical coordinates.
	//
	// Parameters:
	//   - x, y, z: world-space coordinates
	SetTarget(x, y, z float32)

	// Radius returns the current orbit radius (distance from target).
	//
	// Returns:
	//   - float32: current distance from target
	Radius() float32

	// SetRadius sets the orbit radius directly and recomputes position.
	//
	// Parameters:
	//   - radius: new distance from target
	SetRadius(radius float32)

	// Azimuth returns the current horizontal angle around the Y axis.
	//
	// Returns:
	//   - float32: azimuth in degrees
	Azimuth() float32

	// SetAzimuth sets the horizontal angle directly and recomputes position.
	//
	// Parameters:
	//   - azimuth: new horizontal angle in degrees
	SetAzimuth(azimuth float32)

	// Polar returns the current vertical angle from the horizontal plane.
	//
	// Returns:
	//   - float32: polar angle in degrees
	Polar() float32

	// SetPolar sets the vertical angle directly, clamped to min/max bounds,
	// and recomputes position.
	//
	// Parameters:
	//   - polar: new vertical angle in degrees
	SetPolar(polar float32)

	// MinPolar returns the minimum allowed polar angle.
	//
	// Returns:
	//   - float32: minimum polar angle in degrees
	MinPolar() float32

	// MaxPolar returns the maximum allowed polar angle.
	//
	// Returns:
	//   - float32: maximum polar angle in degrees
	MaxPolar() float32

	// MouseSensitivity returns the mouse drag sensitivity multiplier.
	//
	// Returns:
	//   - float32: degrees of rotation per pixel of mouse movement
	MouseSensitivity() float32

	// ApplyMouseDelta rotates the rig from a mouse movement delta.
	// Horizontal movement subtracts dx scaled by sensitivity from azimuth;
	// vertical movement subtracts dy scaled by sensitivity from the polar
	// angle, which is then clamped to its bounds.
	//
	// Parameters:
	//   - dx: horizontal mouse delta in pixels
	//   - dy: vertical mouse delta in pixels
	ApplyMouseDelta(dx, dy float32)
}

// Compile-time interface compliance check
var _ OrbitRig = &orbitRigImpl{}

// NewOrbitRig creates a new orbit rig with sensible defaults.
//
// Parameters:
//   - options: functional options to configure the rig
//
// Returns:
//   - OrbitRig: the newly created rig
func NewOrbitRig(options ...OrbitRigOption) OrbitRig {
	r := &orbitRigImpl{
		mu:     &sync.Mutex{},
		target: [3]float32{0, 0, 0},

		radius:  5.0,
		azimuth: 0.0,
		polar:   0.0,

		minPolar: -85.0,
		maxPolar: 85.0,

		mouseSensitivity: 0.5,
	}

	for _, option := range options {
		option(r)
	}

	// The polar bound holds from construction onward, not just after the
	// first mouse event.
	r.polar = common.Clamp(r.polar, r.minPolar, r.maxPolar)

	r.updatePosition()
	return r
}

// updatePosition recomputes the camera position from spherical coordinates.
// Must be called whenever radius, azimuth, polar, or target changes.
// Caller must hold the mutex.
func (r *orbitRigImpl) updatePosition() {
	azim := float64(common.Deg2Rad(r.azimuth))
	pol := float64(common.Deg2Rad(r.polar))

	cosPol := float32(math.Cos(pol))
	sinPol := float32(math.Sin(pol))
	cosAzim := float32(math.Cos(azim))
	sinAzim := float32(math.Sin(azim))

	r.position[0] = r.target[0] + r.radius*cosPol*sinAzim
	r.position[1] = r.target[1] + r.radius*sinPol
	r.position[2] = r.target[2] + r.radius*cosPol*cosAzim
}

func (r *orbitRigImpl) Position() (x, y, z float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.position[0], r.position[1], r.position[2]
}

func (r *orbitRigImpl) Target() (x, y, z float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.target[0], r.target[1], r.target[2]
}

func (r *orbitRigImpl) SetTarget(x, y, z float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.target[0] = x
	r.target[1] = y
	r.target[2] = z
	r.updatePosition()
}

func (r *orbitRigImpl) Radius() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.radius
}

func (r *orbitRigImpl) SetRadius(radius float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.radius = radius
	r.updatePosition()
}

func (r *orbitRigImpl) Azimuth() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.azimuth
}

func (r *orbitRigImpl) SetAzimuth(azimuth float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.azimuth = azimuth
	r.updatePosition()
}

func (r *orbitRigImpl) Polar() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.polar
}

func (r *orbitRigImpl) SetPolar(polar float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.polar = common.Clamp(polar, r.minPolar, r.maxPolar)
	r.updatePosition()
}

func (r *orbitRigImpl) MinPolar() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.minPolar
}

func (r *orbitRigImpl) MaxPolar() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.maxPolar
}

func (r *orbitRigImpl) MouseSensitivity() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mouseSensitivity
}

func (r *orbitRigImpl) ApplyMouseDelta(dx, dy float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.azimuth -= dx * r.mouseSensitivity
	r.polar = common.Clamp(r.polar-dy*r.mouseSensitivity, r.minPolar, r.maxPolar)
	r.updatePosition()
}
