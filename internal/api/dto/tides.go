package dto

import "time"

type TideSampleResponse struct {
	Time   time.Time `json:"time"`
	Height float64   `json:"height"`
}

type TideSeriesResponse struct {
	StationID string               `json:"station_id"`
	Product   string               `json:"product"`
	Datum     string               `json:"datum"`
	Samples   []TideSampleResponse `json:"samples"`
}
