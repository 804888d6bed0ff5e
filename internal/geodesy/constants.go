package geodesy

import "math"

// Spherical-Earth constants shared with the simulation setup code.
const (
	// Rearth is the mean Earth radius in meters used by the spherical
	// approximation throughout this package.
	Rearth = 6367.5e3

	Deg2Rad = math.Pi / 180
	Rad2Deg = 180 / math.Pi

	// Lat2Meter is the length in meters of one degree of latitude.
	Lat2Meter = Rearth * Deg2Rad
)
