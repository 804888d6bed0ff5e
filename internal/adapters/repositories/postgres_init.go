package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the Postgres schema used by deployments backed by the SQL
// tide cache. Mirrors the SQLite schema with Postgres upsert syntax.
func InitPostgresSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init postgres schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init postgres schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	statements := []string{
		`
	CREATE TABLE IF NOT EXISTS stations (
		station_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		lon DOUBLE PRECISION NOT NULL,
		lat DOUBLE PRECISION NOT NULL
	);
	`,
		`
	CREATE TABLE IF NOT EXISTS tide_cache (
        station_id TEXT NOT NULL,
        product TEXT NOT NULL,
        datum TEXT NOT NULL,
        begin_ts BIGINT NOT NULL,
        end_ts BIGINT NOT NULL,
        samples BYTEA NOT NULL,
        PRIMARY KEY (station_id, product, datum, begin_ts, end_ts)
    );
	`,
		`
	CREATE INDEX IF NOT EXISTS idx_tide_cache_station_product
    ON tide_cache(station_id, product);
	`,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init postgres schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init postgres schema: commit tx: %w", err)
	}

	return nil
}

// Populate a Postgres database with station data from a JSON file.
func SeedPostgresFromJSON(db *sql.DB, jsonPath string) error {
	rows, err := readStationSeeds(jsonPath)
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed stations: begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `
	INSERT INTO stations (station_id, name, lon, lat)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (station_id) DO UPDATE
	SET name = EXCLUDED.name,
		lon = EXCLUDED.lon,
		lat = EXCLUDED.lat;
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed stations: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range rows {
		if _, err := stmt.Exec(s.StationID, s.Name, s.Lon, s.Lat); err != nil {
			return fmt.Errorf("seed stations: insert station_id=%s: %w", s.StationID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed stations: commit tx: %w", err)
	}

	return nil
}
