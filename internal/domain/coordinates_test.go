package domain

import "testing"

func TestCoordsToList(t *testing.T) {
	c := Coordinates{Lon: -70.2, Lat: 41.9}

	got := c.CoordsToList()
	if len(got) != 2 {
		t.Fatalf("got %d elements, want 2", len(got))
	}
	// Order is [lon, lat], matching the point shape the math helpers take.
	if got[0] != -70.2 || got[1] != 41.9 {
		t.Errorf("got %v, want [-70.2 41.9]", got)
	}
}
