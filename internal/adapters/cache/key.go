package cache

import (
	"encoding/json"
	"fmt"
	"geodesy-service/internal/domain"
	"geodesy-service/internal/ports"
	"time"
)

// Cached windows are keyed on the exact request parameters; times are
// truncated to the minute, matching the resolution of the upstream API.
func requestKey(req ports.TideRequest) (station, product, datum string, begin, end int64) {
	return req.StationID, req.Product, req.Datum,
		req.Begin.UTC().Truncate(time.Minute).Unix(),
		req.End.UTC().Truncate(time.Minute).Unix()
}

func encodeSamples(samples []domain.TideSample) ([]byte, error) {
	b, err := json.Marshal(samples)
	if err != nil {
		return nil, fmt.Errorf("encode samples: %w", err)
	}
	return b, nil
}

func decodeSamples(b []byte) ([]domain.TideSample, error) {
	var samples []domain.TideSample
	if err := json.Unmarshal(b, &samples); err != nil {
		return nil, fmt.Errorf("decode samples: %w", err)
	}
	return samples, nil
}
