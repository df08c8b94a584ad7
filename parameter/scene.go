package parameter

// Scene motion constants
// All per-frame and per-event increments are fixed amounts, not time-scaled:
// perceived speed follows the configured frame rate
const (
	// TorusSpinDelta is the per-frame rotation increment in radians,
	// applied to all three torus axes every update step
	TorusSpinDelta = 0.01

	// MoonSpinDeltaX/Y/Z are per-scroll-event rotation increments in radians
	// Applied once per wheel event regardless of scroll magnitude, so the
	// moon's spin rate follows event frequency, not scroll distance
	MoonSpinDeltaX = 0.05
	MoonSpinDeltaY = 0.075
	MoonSpinDeltaZ = 0.05

	// CameraScrollScale maps the scroll offset (distance from top, <= 0)
	// to the camera's vertical position as an absolute set
	CameraScrollScale = -0.0002

	// WheelNotchDistance is the virtual scroll distance of one wheel notch
	WheelNotchDistance = 25.0
)

// Scene geometry constants
const (
	// TorusMajorRadius is the ring radius, TorusMinorRadius the tube radius
	TorusMajorRadius = 10.0
	TorusMinorRadius = 3.0

	// TorusThetaStep/PhiStep control parametric sampling density in radians
	// Theta runs around the tube, phi around the ring
	TorusThetaStep = 0.07
	TorusPhiStep   = 0.02

	// MoonRadius is the moon sphere radius in world units
	MoonRadius = 3.0

	// MoonOffsetX/Y/Z place the moon beside and behind the torus as seen
	// from the camera's start position. Set once at startup, never mutated
	MoonOffsetX = -10.0
	MoonOffsetY = 4.0
	MoonOffsetZ = -20.0

	// StarCountDefault is the starfield size when not configured
	StarCountDefault = 200

	// StarSpread is the half-extent of the cube stars are scattered in
	StarSpread = 100.0
)

// Camera constants
const (
	// CameraOrbitRadius is the distance from the scene origin the camera
	// orbits at; matches the original viewing distance of the scene
	CameraOrbitRadius = 30.0

	// CameraFocalLength scales the perspective projection
	CameraFocalLength = 14.0

	// CameraNearClip drops geometry closer than this view-space depth
	CameraNearClip = 0.5
)

// Orbit control constants
const (
	// OrbitYawPerCell/PitchPerCell convert drag distance in terminal cells
	// to target angle change in radians
	OrbitYawPerCell   = 0.02
	OrbitPitchPerCell = 0.02

	// OrbitDamping is the per-frame approach factor toward the drag target,
	// fixed per frame like every other motion constant
	OrbitDamping = 0.15

	// OrbitPitchLimit keeps the view tilt short of the poles
	OrbitPitchLimit = 1.2
)
