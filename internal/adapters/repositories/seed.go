package repositories

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

type StationSeed struct {
	StationID string  `json:"station_id"`
	Name      string  `json:"name"`
	Lon       float64 `json:"lon"`
	Lat       float64 `json:"lat"`
}

// readStationSeeds loads and validates the station seed file.
func readStationSeeds(jsonPath string) ([]StationSeed, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("seed stations: read %q: %w", jsonPath, err)
	}

	var data []StationSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("seed stations: parse json: %w", err)
	}

	rows := make([]StationSeed, 0, len(data))
	for i, item := range data {
		id := strings.TrimSpace(item.StationID)
		if id == "" {
			return nil, fmt.Errorf("seed stations: item at index %d: station_id cannot be empty", i+1)
		}

		name := strings.TrimSpace(item.Name)
		if name == "" {
			return nil, fmt.Errorf("seed stations: item at index %d: name cannot be empty", i+1)
		}

		if item.Lat < -90 || item.Lat > 90 {
			return nil, fmt.Errorf("seed stations: station %q: latitude out of range: %v", id, item.Lat)
		}
		if item.Lon < -180 || item.Lon > 180 {
			return nil, fmt.Errorf("seed stations: station %q: longitude out of range: %v", id, item.Lon)
		}
		rows = append(rows, StationSeed{StationID: id, Name: name, Lon: item.Lon, Lat: item.Lat})
	}

	return rows, nil
}
