package domain

import "time"

// Represents a single water-level observation or prediction.
type TideSample struct {
	T      time.Time
	Height float64
}

// Represents a fetched water-level series for one station.
// A TideSeries is the output of a tide data provider and is immutable
// result data; heights are meters relative to Datum, times are UTC.
type TideSeries struct {
	StationID string
	Product   string
	Datum     string
	Samples   []TideSample
}
