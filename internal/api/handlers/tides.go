package handlers

import (
	"errors"
	"geodesy-service/internal/adapters/repositories"
	"geodesy-service/internal/adapters/tides"
	"geodesy-service/internal/api/dto"
	"geodesy-service/internal/ports"
	"log"
	"net/http"
	"strings"
	"time"
)

// TideHandler exposes the cached NOAA water-level series endpoint.
type TideHandler struct {
	Repo     ports.StationRepository
	Provider ports.TideProvider
}

// Accepted time layouts for the begin/end query parameters.
var tideTimeLayouts = []string{time.RFC3339, "2006-01-02"}

func parseTideTime(raw string) (time.Time, bool) {
	for _, layout := range tideTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// Get fetches a water-level or prediction series for one station.
func (h *TideHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	q := r.URL.Query()

	stationID := strings.TrimSpace(q.Get("station"))
	if stationID == "" {
		writeError(w, r, http.StatusBadRequest, "station is required")
		return
	}

	beginRaw := q.Get("begin")
	endRaw := q.Get("end")
	if beginRaw == "" || endRaw == "" {
		writeError(w, r, http.StatusBadRequest, "begin and end are required")
		return
	}

	begin, ok := parseTideTime(beginRaw)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "begin must be RFC3339 or YYYY-MM-DD")
		return
	}
	end, ok := parseTideTime(endRaw)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "end must be RFC3339 or YYYY-MM-DD")
		return
	}
	if !begin.Before(end) {
		writeError(w, r, http.StatusBadRequest, "begin must be before end")
		return
	}

	product := q.Get("product")
	if product == "" {
		product = tides.ProductWaterLevel
	}

	datum := q.Get("datum")
	if datum == "" {
		datum = "STND"
	}

	// Reject unknown stations before touching the external API.
	if _, err := h.Repo.GetStation(r.Context(), stationID); err != nil {
		if errors.Is(err, repositories.ErrStationNotFound) {
			writeError(w, r, http.StatusNotFound, "unknown station")
			return
		}
		log.Printf("get station failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	series, err := h.Provider.FetchSeries(r.Context(), ports.TideRequest{
		StationID: stationID,
		Product:   product,
		Datum:     datum,
		Begin:     begin,
		End:       end,
	})
	if err != nil {
		if errors.Is(err, tides.ErrUnknownProduct) {
			writeError(w, r, http.StatusBadRequest, "product must be water_level or predictions")
			return
		}
		log.Printf("fetch tide series failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.TideSeriesResponse{
		StationID: series.StationID,
		Product:   series.Product,
		Datum:     series.Datum,
		Samples:   make([]dto.TideSampleResponse, 0, len(series.Samples)),
	}
	for _, s := range series.Samples {
		res.Samples = append(res.Samples, dto.TideSampleResponse{Time: s.T, Height: s.Height})
	}

	writeJSON(w, r, http.StatusOK, res)
}
