package domain

// Immutable geographic coordinates (longitude, latitude), in degrees.
type Coordinates struct {
	Lon float64
	Lat float64
}

// Return coordinates as [lon, lat] for point-shaped math helpers.
func (c Coordinates) CoordsToList() []float64 { return []float64{c.Lon, c.Lat} }
