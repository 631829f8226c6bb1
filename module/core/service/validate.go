package service

import (
	"time"

	"github.com/shuubhamcodes/FLEETPULSE/module/core/domain"
)

// ReadingPayload is the wire form of a reading. Numeric fields are
// pointers so an absent field is distinguishable from a legal zero.
type ReadingPayload struct {
	VehicleID string   `json:"vehicle_id"`
	Lat       *float64 `json:"lat"`
	Lon       *float64 `json:"lon"`
	Speed     *float64 `json:"speed"`
	Fuel      *float64 `json:"fuel"`
	Temp      *float64 `json:"temp"`
	Timestamp *int64   `json:"timestamp"`
}

// ValidateReading checks presence and ranges in priority order; the
// first failing check wins and its reason is what the caller sees. It
// performs no I/O. The timestamp is required but not otherwise checked.
func ValidateReading(p *ReadingPayload) (*domain.Reading, error) {
	if p.VehicleID == "" || p.Lat == nil || p.Lon == nil ||
		p.Speed == nil || p.Fuel == nil || p.Temp == nil || p.Timestamp == nil {
		return nil, &domain.ValidationError{Reason: "missing required fields"}
	}
	if *p.Temp < -40 || *p.Temp > 120 {
		return nil, &domain.ValidationError{Reason: "temperature out of valid range (-40°C to 120°C)"}
	}
	if *p.Fuel < 0 || *p.Fuel > 100 {
		return nil, &domain.ValidationError{Reason: "fuel must be between 0% and 100%"}
	}
	if *p.Lat < -90 || *p.Lat > 90 || *p.Lon < -180 || *p.Lon > 180 {
		return nil, &domain.ValidationError{Reason: "invalid coordinates"}
	}
	if *p.Speed < 0 {
		return nil, &domain.ValidationError{Reason: "speed cannot be negative"}
	}

	return &domain.Reading{
		VehicleID: p.VehicleID,
		Lat:       *p.Lat,
		Lon:       *p.Lon,
		Speed:     *p.Speed,
		Fuel:      *p.Fuel,
		Temp:      *p.Temp,
		Timestamp: time.Unix(*p.Timestamp, 0),
	}, nil
}
