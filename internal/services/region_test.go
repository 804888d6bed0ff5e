package services

import (
	"geodesy-service/internal/domain"
	"geodesy-service/internal/geodesy"
	"math"
	"testing"
)

func TestComputeRegionExtentEquator(t *testing.T) {
	radius := 100e3

	got, err := ComputeRegionExtent(domain.Coordinates{Lon: 0, Lat: 0}, radius)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// At the equator the degree extents are isotropic.
	wantDeg := radius / geodesy.Lat2Meter
	if math.Abs(got.HalfWidthDeg-wantDeg) > 1e-9 {
		t.Errorf("half width = %v, want %v", got.HalfWidthDeg, wantDeg)
	}
	if math.Abs(got.HalfHeightDeg-wantDeg) > 1e-9 {
		t.Errorf("half height = %v, want %v", got.HalfHeightDeg, wantDeg)
	}

	// The circle just touches the top parallel, so the crossing offset is
	// near zero (or NaN when rounding puts the parallel out of reach).
	if !math.IsNaN(got.NorthOffsetDeg) && math.Abs(got.NorthOffsetDeg) > 0.1 {
		t.Errorf("north offset = %v, want ~0 or NaN", got.NorthOffsetDeg)
	}
}

func TestComputeRegionExtentConvergence(t *testing.T) {
	radius := 50e3

	got, err := ComputeRegionExtent(domain.Coordinates{Lon: -70, Lat: 60}, radius)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// At 60N the longitudinal extent is about double the latitudinal one.
	ratio := got.HalfWidthDeg / got.HalfHeightDeg
	if math.Abs(ratio-2) > 1e-6 {
		t.Errorf("width/height ratio = %v, want 2", ratio)
	}
}

func TestComputeRegionExtentInvalidArgs(t *testing.T) {
	if _, err := ComputeRegionExtent(domain.Coordinates{}, 0); err == nil {
		t.Error("zero radius should fail")
	}
	if _, err := ComputeRegionExtent(domain.Coordinates{Lat: -95}, 1000); err == nil {
		t.Error("latitude out of range should fail")
	}
}
