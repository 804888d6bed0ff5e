// Package geodesy provides closed-form spherical-Earth geodesic formulas:
// degree/minute/second conversion, angular vs. linear displacement
// conversion, haversine great-circle distance, its inverse, and initial
// great-circle bearing.
//
// All functions are pure and safe for concurrent use. Angles always carry an
// explicit Unit tag; callers never rely on convention.
package geodesy

import (
	"errors"
	"fmt"
	"math"
)

// Unit tags the representation of an angle argument.
type Unit string

const (
	Degrees Unit = "degrees"
	Radians Unit = "radians"
)

var (
	// ErrUnrecognizedUnits reports a Unit outside {degrees, radians}.
	ErrUnrecognizedUnits = errors.New("geodesy: unrecognized units")
	// ErrMalformedPoint reports a point sequence whose length is not 2.
	ErrMalformedPoint = errors.New("geodesy: point must be a (lon, lat) pair")
	// ErrShapeMismatch reports coordinate slices of different lengths.
	ErrShapeMismatch = errors.New("geodesy: coordinate slices must have equal length")
)

func (u Unit) valid() bool {
	return u == Degrees || u == Radians
}

// DMS2Decimal converts (degrees, minutes, seconds) to decimal degrees.
// The result is negated when coord is 'S' or 'W'. Ranges of d, m, s are not
// validated; d is expected nonnegative when coord indicates south or west.
func DMS2Decimal(d, m, s float64, coord byte) float64 {
	deg := d + m/60 + s/3600
	if coord == 'S' || coord == 'W' {
		deg = -deg
	}
	return deg
}

// DistLatLong2Meters converts a (dx, dy) displacement in degrees of
// longitude/latitude to meters. latitude (degrees) sets the meridian
// convergence scale factor for dx; pass 0 for the equator.
func DistLatLong2Meters(dx, dy, latitude float64) (dxm, dym float64) {
	dym = Rearth * Deg2Rad * dy
	dxm = Rearth * math.Cos(latitude*Deg2Rad) * dx * Deg2Rad
	return dxm, dym
}

// DistMeters2LatLong converts a (dx, dy) displacement in meters to degrees of
// longitude/latitude. Exact inverse of DistLatLong2Meters. Singular at the
// poles: cos(latitude) == 0 produces an infinite dx, unguarded.
func DistMeters2LatLong(dx, dy, latitude float64) (dxd, dyd float64) {
	dxd = dx / (Rearth * math.Cos(latitude*Deg2Rad)) * Rad2Deg
	dyd = dy * Rad2Deg / Rearth
	return dxd, dyd
}

// Haversine computes the great-circle distance in meters between (x0, y0)
// and (x1, y1), with x the longitude and y the latitude expressed in units.
func Haversine(x0, y0, x1, y1 float64, units Unit) (float64, error) {
	if !units.valid() {
		return 0, unitsErr(units)
	}

	if units == Degrees {
		x0 *= Deg2Rad
		y0 *= Deg2Rad
		x1 *= Deg2Rad
		y1 *= Deg2Rad
	}

	dx := x1 - x0
	dy := y1 - y0

	// Angle subtended by the two points, via the haversine formula.
	sdy := math.Sin(0.5 * dy)
	sdx := math.Sin(0.5 * dx)
	dsigma := 2 * math.Asin(math.Sqrt(sdy*sdy+math.Cos(y0)*math.Cos(y1)*sdx*sdx))

	return Rearth * dsigma, nil
}

// HaversinePoints is the two-point call form of Haversine: p0 and p1 are
// (lon, lat) pairs. Either slice not having length exactly 2 is an error.
func HaversinePoints(p0, p1 []float64, units Unit) (float64, error) {
	if len(p0) != 2 || len(p1) != 2 {
		return 0, fmt.Errorf("%w: got lengths %d and %d", ErrMalformedPoint, len(p0), len(p1))
	}
	return Haversine(p0[0], p0[1], p1[0], p1[1], units)
}

// InvHaversine solves the haversine formula for the longitudinal offset dx
// such that the great-circle distance from (x1, y1) to (x1±dx, y2) equals d
// meters on a sphere of radius rsphere. Only the magnitude is returned; sign
// selection is the caller's. When no real solution exists for the given
// distance and latitudes the result is NaN, which callers must test for.
func InvHaversine(d, x1, y1, y2, rsphere float64, units Unit) (float64, error) {
	if !units.valid() {
		return 0, unitsErr(units)
	}

	if units == Degrees {
		y1 *= Deg2Rad
		y2 *= Deg2Rad
	}

	dsigma := d / rsphere
	cosdx := (math.Cos(dsigma) - math.Sin(y1)*math.Sin(y2)) / (math.Cos(y1) * math.Cos(y2))

	// Acos returns NaN outside [-1, 1]: the designed no-solution signal.
	dx := math.Acos(cosdx)

	if units == Degrees {
		dx *= Rad2Deg
	}
	return dx, nil
}

// Bearing computes the initial great-circle bearing from (x0, y0) to
// (x1, y1): the angle clockwise from true North, normalized to [0, 360)
// degrees or [0, 2π) radians per bearingUnits.
func Bearing(x0, y0, x1, y1 float64, units, bearingUnits Unit) (float64, error) {
	if !units.valid() {
		return 0, unitsErr(units)
	}
	if !bearingUnits.valid() {
		return 0, unitsErr(bearingUnits)
	}

	if units == Degrees {
		x0 *= Deg2Rad
		y0 *= Deg2Rad
		x1 *= Deg2Rad
		y1 *= Deg2Rad
	}

	dx := x1 - x0
	xx := math.Cos(y0)*math.Sin(y1) - math.Sin(y0)*math.Cos(y1)*math.Cos(dx)
	yy := math.Sin(dx) * math.Cos(y1)

	// Radians from North, between -pi and pi.
	b := math.Atan2(yy, xx)

	beta := math.Mod(b*Rad2Deg+360, 360)

	if bearingUnits == Radians {
		beta *= Deg2Rad
	}
	return beta, nil
}
