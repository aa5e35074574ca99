package camera

// Camera defaults
const (
	// Movement
	DefaultSpeed       = 2.5
	DefaultSensitivity = 0.1

	// Default orientation
	DefaultYaw   = -90.0 // Facing -Z direction
	DefaultPitch = 0.0

	// Field of view
	DefaultFOVMin = 1.0
	DefaultFOVMax = 45.0

	// Constraints
	MaxPitch = 89.0
	MinPitch = -89.0
)
