package camera

// Globe geometry
const (
	// GlobeRadius is the radius of the unit sphere the map is drawn on.
	GlobeRadius = 1.0
)

// Camera defaults and constraints
const (
	DefaultHeight = 2.0
	MinHeight     = 0.005
	MaxHeight     = 8.0

	// Degrees of rotation per pixel of drag, at height 1.
	DefaultRotateSpeed = 0.25
	// Multiplicative step per scroll tick.
	DefaultZoomStep = 1.1
	// Degrees of rotation per arrow-key press.
	KeyRotateStep = 2.0

	// Latitude clamp, keeps the view matrix away from the poles
	MaxLatitude = 89.0
	MinLatitude = -89.0

	// Projection
	DefaultFOV = 45.0
	NearPlane  = 0.001
	FarPlane   = 100.0
)
