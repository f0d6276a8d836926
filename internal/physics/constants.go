package physics

import "math"

// Physical constants shared by every chapter. SI units.
const (
	// Gravity is the gravitational acceleration used throughout the
	// catalogs, in m/s².
	Gravity = 9.82

	// G is Newton's gravitational constant, in N·m²/kg².
	G = 6.674e-11

	// SpeedOfLight is c in a vacuum, in m/s.
	SpeedOfLight = 299792458.0
)

const (
	deg2rad = math.Pi / 180
	rad2deg = 180 / math.Pi
)
