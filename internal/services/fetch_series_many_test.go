package services

import (
	"context"
	"geodesy-service/internal/adapters/tides"
	"geodesy-service/internal/domain"
	"geodesy-service/internal/ports"
	"testing"
	"time"
)

func TestFetchSeriesMany(t *testing.T) {
	provider := tides.NewMockTideProvider([]*domain.TideSeries{
		{StationID: "8443970", Product: "water_level", Samples: []domain.TideSample{{Height: 1}}},
		{StationID: "8518750", Product: "water_level", Samples: []domain.TideSample{{Height: 2}}},
	})

	template := ports.TideRequest{
		Product: "water_level",
		Datum:   "STND",
		Begin:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		End:     time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
	}

	// Duplicate ids collapse to one fetch each.
	got, err := FetchSeriesMany(context.Background(), provider, []string{"8443970", "8518750", "8443970"}, template)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("got %d series, want 2", len(got))
	}
	if got["8518750"].Samples[0].Height != 2 {
		t.Errorf("station 8518750 height = %v, want 2", got["8518750"].Samples[0].Height)
	}
}

func TestFetchSeriesManyPropagatesFailure(t *testing.T) {
	provider := tides.NewMockTideProvider([]*domain.TideSeries{
		{StationID: "8443970", Product: "water_level"},
	})

	_, err := FetchSeriesMany(context.Background(), provider, []string{"8443970", "unknown"}, ports.TideRequest{Product: "water_level"})
	if err == nil {
		t.Fatal("expected error for unknown station")
	}
}

func TestFetchSeriesManyEmpty(t *testing.T) {
	got, err := FetchSeriesMany(context.Background(), nil, nil, ports.TideRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %d series, want 0", len(got))
	}
}
