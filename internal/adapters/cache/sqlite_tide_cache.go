package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"geodesy-service/internal/domain"
	"geodesy-service/internal/ports"
	"strings"
)

// SQLite backed cache for fetched tide series. Request parameters are
// expected to be consistent (e.g., already defaulted) by the caller.
type SqliteTideCache struct {
	DB *sql.DB
}

func NewSqliteTideCache(db *sql.DB) *SqliteTideCache {
	return &SqliteTideCache{DB: db}
}

// Fetch the cached series for one request window.
func (s *SqliteTideCache) Get(
	ctx context.Context,
	req ports.TideRequest,
) (*domain.TideSeries, bool, error) {
	if s.DB == nil {
		return nil, false, errors.New("tide cache: db is nil")
	}

	station, product, datum, begin, end := requestKey(req)
	if strings.TrimSpace(station) == "" {
		return nil, false, errors.New("get tide cache: station must not be empty")
	}

	q := `
	SELECT samples
    FROM tide_cache
    WHERE station_id = ?
        AND product = ?
        AND datum = ?
        AND begin_ts = ?
        AND end_ts = ?;
	`

	var blob []byte
	err := s.DB.QueryRowContext(ctx, q, station, product, datum, begin, end).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get tide cache: query tide_cache table: %w", err)
	}

	samples, err := decodeSamples(blob)
	if err != nil {
		return nil, false, fmt.Errorf("get tide cache: %w", err)
	}

	return &domain.TideSeries{
		StationID: station,
		Product:   product,
		Datum:     datum,
		Samples:   samples,
	}, true, nil
}

// Store a fetched series for one request window.
func (s *SqliteTideCache) Put(
	ctx context.Context,
	req ports.TideRequest,
	series *domain.TideSeries,
) error {
	if s.DB == nil {
		return errors.New("tide cache: db is nil")
	}
	if series == nil {
		return errors.New("insert tide cache: series is nil")
	}

	station, product, datum, begin, end := requestKey(req)
	if strings.TrimSpace(station) == "" {
		return errors.New("insert tide cache: station must not be empty")
	}

	blob, err := encodeSamples(series.Samples)
	if err != nil {
		return fmt.Errorf("insert tide cache: %w", err)
	}

	q := `
	INSERT OR REPLACE INTO tide_cache (
        station_id,
        product,
        datum,
        begin_ts,
        end_ts,
        samples
    )
    VALUES (?, ?, ?, ?, ?, ?);
	`

	if _, err := s.DB.ExecContext(ctx, q, station, product, datum, begin, end, blob); err != nil {
		return fmt.Errorf("insert tide cache station=%q: %w", station, err)
	}

	return nil
}
