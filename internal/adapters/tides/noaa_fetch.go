package tides

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"geodesy-service/internal/domain"
	"geodesy-service/internal/ports"
	"net/http"
	"strconv"
	"time"
)

// Timestamp layout the CO-OPS API uses in both directions (GMT).
const noaaTimeLayout = "2006-01-02 15:04"
const noaaDateParamLayout = "20060102 15:04"

type noaaSample struct {
	T string `json:"t"`
	V string `json:"v"`
}

// The API nests observations under "data" and predictions under
// "predictions"; errors come back as 200s with an error object.
type noaaResponse struct {
	Data        []noaaSample `json:"data"`
	Predictions []noaaSample `json:"predictions"`
	Error       *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// fetchRemote retrieves one series from the CO-OPS data API.
// Calls may be retried via doWithRetry.
func (p *NOAATideProvider) fetchRemote(
	ctx context.Context,
	req ports.TideRequest,
) (*domain.TideSeries, error) {
	makeReq := func() (*http.Request, error) {
		r, err := p.newRequest(ctx, p.baseURL)
		if err != nil {
			return nil, err
		}

		q := r.URL.Query()
		q.Set("station", req.StationID)
		q.Set("product", req.Product)
		q.Set("datum", req.Datum)
		q.Set("begin_date", req.Begin.UTC().Format(noaaDateParamLayout))
		q.Set("end_date", req.End.UTC().Format(noaaDateParamLayout))
		q.Set("units", "metric")
		q.Set("time_zone", "gmt")
		q.Set("format", "json")
		q.Set("application", p.application)
		r.URL.RawQuery = q.Encode()

		return r, nil
	}

	resp, err := p.doWithRetry(ctx, makeReq)
	if err != nil {
		return nil, fmt.Errorf("datagetter request failed: %w", err)
	}
	defer resp.Body.Close()

	var nr noaaResponse
	if err := json.NewDecoder(resp.Body).Decode(&nr); err != nil {
		return nil, fmt.Errorf("decode datagetter response: %w", err)
	}

	if nr.Error != nil {
		return nil, fmt.Errorf("datagetter error: %s", nr.Error.Message)
	}

	raw := nr.Data
	if req.Product == ProductPredictions {
		raw = nr.Predictions
	}
	if raw == nil {
		return nil, errors.New("datagetter returned no series")
	}

	samples := make([]domain.TideSample, 0, len(raw))
	for i, s := range raw {
		ts, err := time.ParseInLocation(noaaTimeLayout, s.T, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("parse sample time at index %d: %w", i, err)
		}

		// Gauges report gaps as empty values; skip them rather than failing
		// the whole series.
		if s.V == "" {
			continue
		}

		h, err := strconv.ParseFloat(s.V, 64)
		if err != nil {
			return nil, fmt.Errorf("parse sample height at index %d: %w", i, err)
		}

		samples = append(samples, domain.TideSample{T: ts, Height: h})
	}

	return &domain.TideSeries{
		StationID: req.StationID,
		Product:   req.Product,
		Datum:     req.Datum,
		Samples:   samples,
	}, nil
}
