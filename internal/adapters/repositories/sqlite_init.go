package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createStationsQuery := `
	CREATE TABLE IF NOT EXISTS stations (
		station_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		lon REAL NOT NULL,
		lat REAL NOT NULL
	);
	`

	createTideCacheQuery := `
	CREATE TABLE IF NOT EXISTS tide_cache (
        station_id TEXT NOT NULL,
        product TEXT NOT NULL,
        datum TEXT NOT NULL,
        begin_ts INTEGER NOT NULL,
        end_ts INTEGER NOT NULL,
        samples BLOB NOT NULL,
        PRIMARY KEY (station_id, product, datum, begin_ts, end_ts)
    );
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_tide_cache_station_product
    ON tide_cache(station_id, product);
	`

	statements := []string{
		createStationsQuery,
		createTideCacheQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Populate the database with station data from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
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
	INSERT OR REPLACE INTO stations (
		station_id,
		name,
		lon,
		lat
	)
	VALUES (?, ?, ?, ?);
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
