package cache

import (
	"context"
	"geodesy-service/internal/domain"
	"geodesy-service/internal/ports"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T) *RedisTideCache {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisTideCache(client, time.Hour)
}

func testRequest() ports.TideRequest {
	return ports.TideRequest{
		StationID: "8518750",
		Product:   "water_level",
		Datum:     "STND",
		Begin:     time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		End:       time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
	}
}

func TestRedisTideCacheMiss(t *testing.T) {
	c := newTestCache(t)

	_, ok, err := c.Get(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected cache miss")
	}
}

func TestRedisTideCachePutGet(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()
	req := testRequest()

	series := &domain.TideSeries{
		StationID: req.StationID,
		Product:   req.Product,
		Datum:     req.Datum,
		Samples: []domain.TideSample{
			{T: req.Begin, Height: 1.234},
			{T: req.Begin.Add(6 * time.Minute), Height: 1.301},
		},
	}

	if err := c.Put(ctx, req, series); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := c.Get(ctx, req)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected cache hit")
	}

	if got.StationID != series.StationID || len(got.Samples) != 2 {
		t.Fatalf("got %+v, want %+v", got, series)
	}
	if got.Samples[1].Height != 1.301 {
		t.Errorf("sample height = %v, want 1.301", got.Samples[1].Height)
	}
	if !got.Samples[0].T.Equal(req.Begin) {
		t.Errorf("sample time = %v, want %v", got.Samples[0].T, req.Begin)
	}
}

func TestRedisTideCacheKeyIsolation(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()
	req := testRequest()

	if err := c.Put(ctx, req, &domain.TideSeries{StationID: req.StationID, Product: req.Product}); err != nil {
		t.Fatalf("put: %v", err)
	}

	// Same station, different product: must not collide.
	other := req
	other.Product = "predictions"

	_, ok, err := c.Get(ctx, other)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatal("different product should miss")
	}
}
