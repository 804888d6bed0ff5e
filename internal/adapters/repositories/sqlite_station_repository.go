package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"geodesy-service/internal/domain"
)

// ErrStationNotFound reports a lookup for an unknown station id.
var ErrStationNotFound = errors.New("station not found")

// SQLite-backed implementation of the StationRepository port.
type SqliteStationRepository struct{ DB *sql.DB }

func NewSqliteStationRepository(db *sql.DB) *SqliteStationRepository {
	return &SqliteStationRepository{DB: db}
}

// Return all stations stored in the database.
func (s *SqliteStationRepository) ListStations(ctx context.Context) ([]*domain.Station, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite station repository: DB is nil")
	}

	query := `
	SELECT
		station_id,
		name,
		lon,
		lat
	FROM stations
	ORDER BY station_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stations: query stations table: %w", err)
	}
	defer rows.Close()

	stations := make([]*domain.Station, 0, 64)
	for rows.Next() {
		var id, name string
		var lon, lat float64
		err := rows.Scan(&id, &name, &lon, &lat)
		if err != nil {
			return nil, fmt.Errorf("list stations: scan row: %w", err)
		}
		stations = append(stations, &domain.Station{
			ID:          id,
			Name:        name,
			Coordinates: domain.Coordinates{Lon: lon, Lat: lat},
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list stations: row iteration: %w", err)
	}

	return stations, nil
}

// Return a single station by its NOAA identifier.
func (s *SqliteStationRepository) GetStation(ctx context.Context, id string) (*domain.Station, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite station repository: DB is nil")
	}

	query := `
	SELECT
		station_id,
		name,
		lon,
		lat
	FROM stations
	WHERE station_id = ?;
	`

	var stationID, name string
	var lon, lat float64
	err := s.DB.QueryRowContext(ctx, query, id).Scan(&stationID, &name, &lon, &lat)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get station %q: %w", id, ErrStationNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get station %q: query stations table: %w", id, err)
	}

	return &domain.Station{
		ID:          stationID,
		Name:        name,
		Coordinates: domain.Coordinates{Lon: lon, Lat: lat},
	}, nil
}
