package domain

// Represents a tide gauge station known to the system.
// A Station has a unique NOAA identifier, a display name, and the
// geographic coordinates used for nearest-station searches.
type Station struct {
	ID          string
	Name        string
	Coordinates Coordinates
}
