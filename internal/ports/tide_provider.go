package ports

import (
	"context"
	"geodesy-service/internal/domain"
	"time"
)

// Parameters identifying one water-level series.
type TideRequest struct {
	StationID string
	Product   string // "water_level" or "predictions"
	Datum     string // e.g. "STND", "MLLW"
	Begin     time.Time
	End       time.Time
}

// Contract for fetching water-level series for a station.
type TideProvider interface {
	// Return the series for the requested station, product, and window.
	FetchSeries(ctx context.Context, req TideRequest) (*domain.TideSeries, error)
}
