package ports

import (
	"context"
	"geodesy-service/internal/domain"
)

// Port: a boundary for retrieving Station entities from a data source.
type StationRepository interface {
	// Retrieve all known tide gauge stations.
	ListStations(ctx context.Context) ([]*domain.Station, error)
	// Retrieve a single station by its NOAA identifier.
	GetStation(ctx context.Context, id string) (*domain.Station, error)
}
