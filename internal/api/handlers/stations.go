package handlers

import (
	"geodesy-service/internal/api/dto"
	"geodesy-service/internal/domain"
	"geodesy-service/internal/ports"
	"geodesy-service/internal/services"
	"log"
	"net/http"
	"strconv"
)

// StationHandler exposes tide gauge station retrieval endpoints.
type StationHandler struct {
	Repo ports.StationRepository
}

func (h *StationHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	stations, err := h.Repo.ListStations(r.Context())
	if err != nil {
		log.Printf("list stations failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListStationsResponse{
		Stations: make([]dto.StationResponse, 0, len(stations)),
	}
	for _, s := range stations {
		res.Stations = append(res.Stations, dto.StationResponse{
			StationID: s.ID,
			Name:      s.Name,
			Lon:       s.Coordinates.Lon,
			Lat:       s.Coordinates.Lat,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Nearest ranks stations by great-circle distance from a query point.
func (h *StationHandler) Nearest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	coords, err := queryFloats(r, "lon", "lat")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	n := 5
	if raw := r.URL.Query().Get("n"); raw != "" {
		n, err = strconv.Atoi(raw)
		if err != nil || n < 1 || n > 50 {
			writeError(w, r, http.StatusBadRequest, "n must be an integer between 1 and 50")
			return
		}
	}

	point := domain.Coordinates{Lon: coords[0], Lat: coords[1]}
	if point.Lat < -90 || point.Lat > 90 {
		writeError(w, r, http.StatusBadRequest, "lat must be between -90 and 90")
		return
	}

	ranked, err := services.NearestStations(r.Context(), h.Repo, point, n)
	if err != nil {
		log.Printf("nearest stations failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.NearestStationsResponse{
		Stations: make([]dto.NearestStationResponse, 0, len(ranked)),
	}
	for _, sd := range ranked {
		res.Stations = append(res.Stations, dto.NearestStationResponse{
			StationResponse: dto.StationResponse{
				StationID: sd.Station.ID,
				Name:      sd.Station.Name,
				Lon:       sd.Station.Coordinates.Lon,
				Lat:       sd.Station.Coordinates.Lat,
			},
			DistanceMeters: sd.Meters,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
