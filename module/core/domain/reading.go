package domain

import "time"

// Reading is one timestamped telemetry sample from a vehicle. It is
// immutable once it passes validation; a reading that fails validation
// never reaches the evaluators or the store.
type Reading struct {
	VehicleID string
	Lat       float64
	Lon       float64
	Speed     float64
	Fuel      float64
	Temp      float64
	Timestamp time.Time
}
