package tides

import (
	"context"
	"errors"
	"fmt"
	"geodesy-service/internal/domain"
	"geodesy-service/internal/platform/obs"
	"geodesy-service/internal/ports"
	"log"
	"net/http"
	"strings"
	"time"
)

// Products the CO-OPS data API serves that this provider understands.
const (
	ProductWaterLevel  = "water_level"
	ProductPredictions = "predictions"
)

var ErrUnknownProduct = errors.New("tide provider: unknown product")

// NOAATideProvider implements TideProvider against the NOAA CO-OPS data API.
//
// It coordinates:
//   - Request validation and parameter encoding
//   - Persistent series caching (write-through)
//   - External API calls with retry/backoff
//
// The provider is safe for concurrent use.
type NOAATideProvider struct {
	session     *http.Client
	baseURL     string
	application string
	cache       ports.TideCache
}

func NewNOAATideProvider(application string, cache ports.TideCache) *NOAATideProvider {
	return &NOAATideProvider{
		session:     &http.Client{Timeout: 30 * time.Second},
		baseURL:     "https://api.tidesandcurrents.noaa.gov/api/prod/datagetter",
		application: application,
		cache:       cache,
	}
}

// FetchSeries returns the water-level or prediction series for one station
// and time window, consulting the cache before calling the external API.
func (p *NOAATideProvider) FetchSeries(
	ctx context.Context,
	req ports.TideRequest,
) (_ *domain.TideSeries, err error) {
	defer obs.Time(ctx, "noaa.FetchSeries")(&err)

	if strings.TrimSpace(req.StationID) == "" {
		return nil, errors.New("fetch tide series: station id must be non-empty")
	}
	if req.Product != ProductWaterLevel && req.Product != ProductPredictions {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProduct, req.Product)
	}
	if !req.Begin.Before(req.End) {
		return nil, fmt.Errorf("fetch tide series: begin %v is not before end %v", req.Begin, req.End)
	}

	if req.Datum == "" {
		req.Datum = "STND"
	}

	if p.cache != nil {
		series, ok, err := p.cache.Get(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("fetch tide series: cache get: %w", err)
		}
		if ok {
			return series, nil
		}
	}

	series, err := p.fetchRemote(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("fetch tide series: station %q: %w", req.StationID, err)
	}

	if p.cache != nil {
		if err := p.cache.Put(ctx, req, series); err != nil {
			log.Printf("tide cache write failed: station=%s err=%v", req.StationID, err)
		}
	}

	return series, nil
}
