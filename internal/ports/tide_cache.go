package ports

import (
	"context"
	"geodesy-service/internal/domain"
)

// Contract for caching fetched tide series keyed by request parameters.
type TideCache interface {
	// Return the cached series and whether it was present.
	Get(ctx context.Context, req TideRequest) (*domain.TideSeries, bool, error)
	// Store a fetched series.
	Put(ctx context.Context, req TideRequest, series *domain.TideSeries) error
}
