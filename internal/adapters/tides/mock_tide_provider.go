package tides

import (
	"context"
	"fmt"
	"geodesy-service/internal/domain"
	"geodesy-service/internal/ports"
)

type MockTideProvider struct {
	m map[string]*domain.TideSeries
}

func NewMockTideProvider(series []*domain.TideSeries) *MockTideProvider {
	m := make(map[string]*domain.TideSeries, len(series))
	for _, s := range series {
		m[s.StationID+"|"+s.Product] = s
	}
	return &MockTideProvider{m: m}
}

func (p *MockTideProvider) FetchSeries(ctx context.Context, req ports.TideRequest) (*domain.TideSeries, error) {
	s, ok := p.m[req.StationID+"|"+req.Product]
	if !ok {
		return nil, fmt.Errorf("missing series %q product %q", req.StationID, req.Product)
	}

	return s, nil
}
