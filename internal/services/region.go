package services

import (
	"errors"
	"fmt"
	"geodesy-service/internal/domain"
	"geodesy-service/internal/geodesy"
)

// Degree extents of a metric-radius region around a center point, used to
// size rectangular simulation domains that must contain a circle of
// physical radius on the sphere.
type RegionExtent struct {
	// Half-widths of the bounding rectangle, in degrees at the center.
	HalfWidthDeg  float64
	HalfHeightDeg float64

	// Longitudinal offsets of the radius circle where it crosses the
	// parallels at the top and bottom of the rectangle. NaN when the circle
	// does not reach that parallel.
	NorthOffsetDeg float64
	SouthOffsetDeg float64
}

// ComputeRegionExtent converts a physical radius in meters into degree
// extents around center. The half-widths use the local meter/degree scale at
// the center latitude; the offsets solve the inverse haversine problem at the
// edge parallels.
func ComputeRegionExtent(center domain.Coordinates, radiusMeters float64) (RegionExtent, error) {
	if radiusMeters <= 0 {
		return RegionExtent{}, errors.New("region extent: radius must be positive")
	}
	if center.Lat < -90 || center.Lat > 90 {
		return RegionExtent{}, fmt.Errorf("region extent: latitude out of range: %v", center.Lat)
	}

	halfWidth, halfHeight := geodesy.DistMeters2LatLong(radiusMeters, radiusMeters, center.Lat)

	north := center.Lat + halfHeight
	south := center.Lat - halfHeight

	northOffset, err := geodesy.InvHaversine(
		radiusMeters, center.Lon, center.Lat, north,
		geodesy.Rearth, geodesy.Degrees,
	)
	if err != nil {
		return RegionExtent{}, fmt.Errorf("region extent: north offset: %w", err)
	}

	southOffset, err := geodesy.InvHaversine(
		radiusMeters, center.Lon, center.Lat, south,
		geodesy.Rearth, geodesy.Degrees,
	)
	if err != nil {
		return RegionExtent{}, fmt.Errorf("region extent: south offset: %w", err)
	}

	// NaN offsets propagate to the caller: the circle not reaching a
	// parallel is a legitimate outcome, not a failure.
	return RegionExtent{
		HalfWidthDeg:   halfWidth,
		HalfHeightDeg:  halfHeight,
		NorthOffsetDeg: northOffset,
		SouthOffsetDeg: southOffset,
	}, nil
}
