package services

import (
	"context"
	"errors"
	"fmt"
	"geodesy-service/internal/domain"
	"geodesy-service/internal/ports"
	"sync"
)

type seriesResult struct {
	stationID string
	series    *domain.TideSeries
	err       error
}

// FetchSeriesMany fetches the same product window for several stations
// concurrently. Simulation setup pulls boundary forcing for every gauge in a
// region at once, so fetches run in parallel with a bounded fan-out; the
// first failure cancels the rest.
func FetchSeriesMany(
	ctx context.Context,
	provider ports.TideProvider,
	stationIDs []string,
	template ports.TideRequest,
) (map[string]*domain.TideSeries, error) {
	if len(stationIDs) == 0 {
		return map[string]*domain.TideSeries{}, nil
	}

	seen := make(map[string]struct{}, len(stationIDs))
	uniq := make([]string, 0, len(stationIDs))
	for _, id := range stationIDs {
		if id == "" {
			return nil, errors.New("fetch series many: empty station id")
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		uniq = append(uniq, id)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sem := make(chan struct{}, 5)
	resultsCh := make(chan seriesResult, len(uniq))
	var wg sync.WaitGroup

	for _, id := range uniq {
		wg.Add(1)
		go func(stationID string) {
			sem <- struct{}{}
			defer wg.Done()
			defer func() { <-sem }()

			req := template
			req.StationID = stationID

			series, err := provider.FetchSeries(ctx, req)
			if err != nil {
				resultsCh <- seriesResult{stationID: stationID, err: fmt.Errorf("fetch series many: station %q: %w", stationID, err)}
				cancel()
				return
			}

			resultsCh <- seriesResult{stationID: stationID, series: series}
		}(id)
	}

	wg.Wait()
	close(resultsCh)

	out := make(map[string]*domain.TideSeries, len(uniq))
	var fetchErr error
	for res := range resultsCh {
		if res.err != nil {
			if fetchErr == nil {
				fetchErr = res.err
			}
			continue
		}
		out[res.stationID] = res.series
	}
	if fetchErr != nil {
		return nil, fetchErr
	}

	return out, nil
}
