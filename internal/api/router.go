package api

import (
	"geodesy-service/internal/api/handlers"
	"geodesy-service/internal/ports"
	"net/http"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.StationRepository, provider ports.TideProvider) http.Handler {
	mux := http.NewServeMux()

	geoHandler := &handlers.GeodesyHandler{}
	stationHandler := &handlers.StationHandler{Repo: repo}
	tideHandler := &handlers.TideHandler{
		Repo:     repo,
		Provider: provider,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/convert/dms", geoHandler.ConvertDMS)
	mux.HandleFunc("/distance", geoHandler.Distance)
	mux.HandleFunc("/bearing", geoHandler.Bearing)
	mux.HandleFunc("/displacement", geoHandler.Displacement)
	mux.HandleFunc("/stations", stationHandler.List)
	mux.HandleFunc("/stations/nearest", stationHandler.Nearest)
	mux.HandleFunc("/tides", tideHandler.Get)

	return loggingMiddleware(mux)
}
