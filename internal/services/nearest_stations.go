package services

import (
	"context"
	"errors"
	"fmt"
	"geodesy-service/internal/domain"
	"geodesy-service/internal/geodesy"
	"geodesy-service/internal/ports"
	"math"
	"slices"
)

// A station paired with its great-circle distance from a query point.
type StationDistance struct {
	Station *domain.Station
	Meters  float64
}

// NearestStations ranks the known tide gauge stations by haversine distance
// from a query point and returns the n closest.
//
// The ranking is deterministic: equal distances tie-break on station id.
func NearestStations(
	ctx context.Context,
	repo ports.StationRepository,
	point domain.Coordinates,
	n int,
) ([]StationDistance, error) {
	if n < 1 {
		return nil, errors.New("nearest stations: n must be at least 1")
	}
	// NaN slips through plain range comparisons, so reject it explicitly.
	if math.IsNaN(point.Lat) || point.Lat < -90 || point.Lat > 90 {
		return nil, fmt.Errorf("nearest stations: latitude out of range: %v", point.Lat)
	}

	stations, err := repo.ListStations(ctx)
	if err != nil {
		return nil, fmt.Errorf("nearest stations: list stations: %w", err)
	}

	origin := point.CoordsToList()
	ranked := make([]StationDistance, 0, len(stations))
	for _, s := range stations {
		d, err := geodesy.HaversinePoints(origin, s.Coordinates.CoordsToList(), geodesy.Degrees)
		if err != nil {
			return nil, fmt.Errorf("nearest stations: distance to %q: %w", s.ID, err)
		}
		ranked = append(ranked, StationDistance{Station: s, Meters: d})
	}

	slices.SortFunc(ranked, func(a, b StationDistance) int {
		if a.Meters < b.Meters {
			return -1
		}
		if a.Meters > b.Meters {
			return 1
		}
		// Tie-breaker ensures deterministic ordering when distances are equal.
		if a.Station.ID < b.Station.ID {
			return -1
		}
		if a.Station.ID > b.Station.ID {
			return 1
		}
		return 0
	})

	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked, nil
}
