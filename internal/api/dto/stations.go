package dto

type StationResponse struct {
	StationID string  `json:"station_id"`
	Name      string  `json:"name"`
	Lon       float64 `json:"lon"`
	Lat       float64 `json:"lat"`
}

type ListStationsResponse struct {
	Stations []StationResponse `json:"stations"`
}

type NearestStationResponse struct {
	StationResponse
	DistanceMeters float64 `json:"distance_meters"`
}

type NearestStationsResponse struct {
	Stations []NearestStationResponse `json:"stations"`
}
