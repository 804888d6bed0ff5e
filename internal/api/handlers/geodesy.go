package handlers

import (
	"errors"
	"fmt"
	"geodesy-service/internal/api/dto"
	"geodesy-service/internal/geodesy"
	"math"
	"net/http"
	"strconv"
)

// GeodesyHandler exposes the pure coordinate-conversion and great-circle
// endpoints. It holds no state; every computation is a single call into the
// geodesy package.
type GeodesyHandler struct{}

func queryFloat(r *http.Request, name string) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, fmt.Errorf("missing parameter %q", name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parameter %q is not a number", name)
	}
	// ParseFloat accepts "NaN" and "Inf"; those poison the math and make the
	// response body unencodable, so reject them here.
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("parameter %q must be finite", name)
	}
	return v, nil
}

func queryUnits(r *http.Request, name string, fallback geodesy.Unit) geodesy.Unit {
	if raw := r.URL.Query().Get(name); raw != "" {
		return geodesy.Unit(raw)
	}
	return fallback
}

// ConvertDMS converts degrees/minutes/seconds query parameters to decimal
// degrees.
func (h *GeodesyHandler) ConvertDMS(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	d, err := queryFloat(r, "d")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	m, err := queryFloat(r, "m")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	s, err := queryFloat(r, "s")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	coord := r.URL.Query().Get("coord")
	if coord == "" {
		coord = "N"
	}
	if len(coord) != 1 {
		writeError(w, r, http.StatusBadRequest, "coord must be one of N, S, E, W")
		return
	}

	deg := geodesy.DMS2Decimal(d, m, s, coord[0])
	writeJSON(w, r, http.StatusOK, dto.ConvertDMSResponse{DecimalDegrees: deg})
}

// Distance computes the haversine great-circle distance between two points.
func (h *GeodesyHandler) Distance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	coords, err := queryFloats(r, "x0", "y0", "x1", "y1")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	units := queryUnits(r, "units", geodesy.Degrees)

	meters, err := geodesy.Haversine(coords[0], coords[1], coords[2], coords[3], units)
	if err != nil {
		if errors.Is(err, geodesy.ErrUnrecognizedUnits) {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.DistanceResponse{Meters: meters})
}

// Bearing computes the initial great-circle bearing between two points.
func (h *GeodesyHandler) Bearing(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	coords, err := queryFloats(r, "x0", "y0", "x1", "y1")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	units := queryUnits(r, "units", geodesy.Degrees)
	bearingUnits := queryUnits(r, "bearing_units", geodesy.Degrees)

	b, err := geodesy.Bearing(coords[0], coords[1], coords[2], coords[3], units, bearingUnits)
	if err != nil {
		if errors.Is(err, geodesy.ErrUnrecognizedUnits) {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.BearingResponse{Bearing: b, Units: string(bearingUnits)})
}

// Displacement converts a (dx, dy) displacement between degrees and meters
// at a given latitude.
func (h *GeodesyHandler) Displacement(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	vals, err := queryFloats(r, "dx", "dy")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	lat := 0.0
	if r.URL.Query().Get("lat") != "" {
		lat, err = queryFloat(r, "lat")
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
	}

	var dx, dy float64
	var units string
	switch to := r.URL.Query().Get("to"); to {
	case "meters":
		dx, dy = geodesy.DistLatLong2Meters(vals[0], vals[1], lat)
		units = "meters"
	case "degrees":
		dx, dy = geodesy.DistMeters2LatLong(vals[0], vals[1], lat)
		units = "degrees"
	default:
		writeError(w, r, http.StatusBadRequest, `parameter "to" must be "meters" or "degrees"`)
		return
	}

	// The pole singularity propagates as an unencodable infinity; surface it
	// as a client error instead of a broken JSON body.
	if math.IsInf(dx, 0) || math.IsNaN(dx) {
		writeError(w, r, http.StatusBadRequest, "conversion is singular at the poles")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.DisplacementResponse{Dx: dx, Dy: dy, Units: units, Latitude: lat})
}

func queryFloats(r *http.Request, names ...string) ([]float64, error) {
	out := make([]float64, len(names))
	for i, n := range names {
		v, err := queryFloat(r, n)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
