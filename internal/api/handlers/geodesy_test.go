package handlers

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
)

func doGet(t *testing.T, handler http.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestConvertDMS(t *testing.T) {
	h := &GeodesyHandler{}

	rec := doGet(t, h.ConvertDMS, "/convert/dms?d=7&m=30&s=36&coord=W")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}

	var res struct {
		DecimalDegrees float64 `json:"decimal_degrees"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if math.Abs(res.DecimalDegrees-(-7.51)) > 1e-9 {
		t.Errorf("decimal degrees = %v, want -7.51", res.DecimalDegrees)
	}
}

func TestConvertDMSMissingParam(t *testing.T) {
	h := &GeodesyHandler{}

	rec := doGet(t, h.ConvertDMS, "/convert/dms?d=7&m=30")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestDistanceEndpoint(t *testing.T) {
	h := &GeodesyHandler{}

	rec := doGet(t, h.Distance, "/distance?x0=0&y0=0&x1=0&y1=1")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}

	var res struct {
		Meters float64 `json:"meters"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}

	want := 6367.5e3 * math.Pi / 180
	if math.Abs(res.Meters-want) > 1 {
		t.Errorf("meters = %v, want %v", res.Meters, want)
	}
}

// ParseFloat accepts "NaN" and "Inf"; if they reached the math the encoder
// would fail after the 200 header was already written, so the handlers must
// reject them up front.
func TestNonFiniteParamsRejected(t *testing.T) {
	h := &GeodesyHandler{}

	cases := []struct {
		name    string
		handler http.HandlerFunc
		target  string
	}{
		{"distance NaN", h.Distance, "/distance?x0=NaN&y0=0&x1=0&y1=1"},
		{"distance Inf", h.Distance, "/distance?x0=0&y0=0&x1=Inf&y1=1"},
		{"bearing NaN", h.Bearing, "/bearing?x0=0&y0=0&x1=10&y1=NaN"},
		{"displacement Inf", h.Displacement, "/displacement?dx=-Inf&dy=1&to=meters"},
		{"convert NaN", h.ConvertDMS, "/convert/dms?d=NaN&m=0&s=0"},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			rec := doGet(t, tt.handler, tt.target)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400 (body %s)", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestNearestNonFiniteRejected(t *testing.T) {
	// Parameter validation fails before the repository is touched.
	h := &StationHandler{}

	rec := doGet(t, h.Nearest, "/stations/nearest?lon=0&lat=NaN")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 (body %s)", rec.Code, rec.Body.String())
	}
}

func TestDistanceEndpointBadUnits(t *testing.T) {
	h := &GeodesyHandler{}

	rec := doGet(t, h.Distance, "/distance?x0=0&y0=0&x1=0&y1=1&units=cubits")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestBearingEndpoint(t *testing.T) {
	h := &GeodesyHandler{}

	rec := doGet(t, h.Bearing, "/bearing?x0=0&y0=0&x1=10&y1=0")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}

	var res struct {
		Bearing float64 `json:"bearing"`
		Units   string  `json:"units"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if math.Abs(res.Bearing-90) > 1e-9 {
		t.Errorf("bearing = %v, want 90", res.Bearing)
	}
	if res.Units != "degrees" {
		t.Errorf("units = %q, want degrees", res.Units)
	}
}

func TestDisplacementRoundTrip(t *testing.T) {
	h := &GeodesyHandler{}

	rec := doGet(t, h.Displacement, "/displacement?dx=1&dy=1&lat=45&to=meters")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}

	var res struct {
		Dx float64 `json:"dx"`
		Dy float64 `json:"dy"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}

	// Longitude meters shrink by cos(45) relative to latitude meters.
	if math.Abs(res.Dx/res.Dy-math.Cos(45*math.Pi/180)) > 1e-9 {
		t.Errorf("dx/dy = %v, want cos(45 deg)", res.Dx/res.Dy)
	}
}

func TestDisplacementPoleRejected(t *testing.T) {
	h := &GeodesyHandler{}

	rec := doGet(t, h.Displacement, "/displacement?dx=1000&dy=1000&lat=90&to=degrees")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestDisplacementBadTarget(t *testing.T) {
	h := &GeodesyHandler{}

	rec := doGet(t, h.Displacement, "/displacement?dx=1&dy=1&to=fathoms")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
