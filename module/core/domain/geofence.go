package domain

// Point is a lon/lat vertex in degrees.
type Point struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// Geofence is a named polygonal region given as a single outer ring.
// The ring may or may not repeat its first vertex; holes are not
// supported.
type Geofence struct {
	LocationName string
	Boundary     []Point
}

const NotificationGeofence = "geofence"

type Notification struct {
	UserID  string
	Type    string
	Message string
	Read    bool
}
