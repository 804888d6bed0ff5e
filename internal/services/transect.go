package services

import (
	"errors"
	"fmt"
	"geodesy-service/internal/domain"
	"geodesy-service/internal/geodesy"
)

// One sample along a transect: its coordinates, the great-circle distance
// from the transect origin, and the initial bearing from the origin.
type TransectPoint struct {
	Coordinates domain.Coordinates
	Meters      float64
	BearingDeg  float64
}

// Transect samples n points along the coordinate chord from p0 to p1
// (inclusive of both endpoints) and reports each point's great-circle
// distance and initial bearing from p0. Post-processing uses these to
// extract model output along observation lines.
func Transect(p0, p1 domain.Coordinates, n int) ([]TransectPoint, error) {
	if n < 2 {
		return nil, errors.New("transect: need at least 2 sample points")
	}

	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := 0; i < n; i++ {
		f := float64(i) / float64(n-1)
		xs[i] = p0.Lon + f*(p1.Lon-p0.Lon)
		ys[i] = p0.Lat + f*(p1.Lat-p0.Lat)
	}

	dists, err := geodesy.HaversineSlice(p0.Lon, p0.Lat, xs, ys, geodesy.Degrees)
	if err != nil {
		return nil, fmt.Errorf("transect: distances: %w", err)
	}

	bearings, err := geodesy.BearingSlice(p0.Lon, p0.Lat, xs, ys, geodesy.Degrees, geodesy.Degrees)
	if err != nil {
		return nil, fmt.Errorf("transect: bearings: %w", err)
	}

	points := make([]TransectPoint, n)
	for i := range points {
		points[i] = TransectPoint{
			Coordinates: domain.Coordinates{Lon: xs[i], Lat: ys[i]},
			Meters:      dists[i],
			BearingDeg:  bearings[i],
		}
	}
	return points, nil
}
