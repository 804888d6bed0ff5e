package repositories

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return db
}

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "stations.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write seed file: %v", err)
	}
	return path
}

const testSeed = `[
	{ "station_id": "8443970", "name": "Boston, MA", "lon": -71.0503, "lat": 42.3539 },
	{ "station_id": "8518750", "name": "The Battery, NY", "lon": -74.0142, "lat": 40.7006 }
]`

func TestSeedAndListStations(t *testing.T) {
	db := openTestDB(t)

	if err := SeedFromJSON(db, writeSeedFile(t, testSeed)); err != nil {
		t.Fatalf("seed: %v", err)
	}

	repo := NewSqliteStationRepository(db)
	stations, err := repo.ListStations(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(stations) != 2 {
		t.Fatalf("got %d stations, want 2", len(stations))
	}
	if stations[0].ID != "8443970" || stations[1].ID != "8518750" {
		t.Errorf("stations out of order: %s, %s", stations[0].ID, stations[1].ID)
	}
	if stations[0].Coordinates.Lat != 42.3539 {
		t.Errorf("lat = %v, want 42.3539", stations[0].Coordinates.Lat)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	path := writeSeedFile(t, testSeed)

	if err := SeedFromJSON(db, path); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := SeedFromJSON(db, path); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	stations, err := NewSqliteStationRepository(db).ListStations(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(stations) != 2 {
		t.Fatalf("got %d stations after re-seed, want 2", len(stations))
	}
}

func TestGetStation(t *testing.T) {
	db := openTestDB(t)
	if err := SeedFromJSON(db, writeSeedFile(t, testSeed)); err != nil {
		t.Fatalf("seed: %v", err)
	}

	repo := NewSqliteStationRepository(db)

	st, err := repo.GetStation(context.Background(), "8518750")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if st.Name != "The Battery, NY" {
		t.Errorf("name = %q", st.Name)
	}

	_, err = repo.GetStation(context.Background(), "0000000")
	if !errors.Is(err, ErrStationNotFound) {
		t.Fatalf("want ErrStationNotFound, got %v", err)
	}
}

func TestSeedRejectsMalformedRows(t *testing.T) {
	db := openTestDB(t)

	bad := `[{ "station_id": "", "name": "nameless", "lon": 0, "lat": 0 }]`
	if err := SeedFromJSON(db, writeSeedFile(t, bad)); err == nil {
		t.Fatal("expected error for empty station_id")
	}

	outOfRange := `[{ "station_id": "1", "name": "x", "lon": -200, "lat": 0 }]`
	if err := SeedFromJSON(db, writeSeedFile(t, outOfRange)); err == nil {
		t.Fatal("expected error for out-of-range longitude")
	}
}
