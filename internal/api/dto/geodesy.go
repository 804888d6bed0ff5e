package dto

type ConvertDMSResponse struct {
	DecimalDegrees float64 `json:"decimal_degrees"`
}

type DistanceResponse struct {
	Meters float64 `json:"meters"`
}

type BearingResponse struct {
	Bearing float64 `json:"bearing"`
	Units   string  `json:"units"`
}

type DisplacementResponse struct {
	Dx       float64 `json:"dx"`
	Dy       float64 `json:"dy"`
	Units    string  `json:"units"`
	Latitude float64 `json:"latitude"`
}
