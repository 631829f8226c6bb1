package service

import (
	"errors"
	"testing"
	"time"

	"github.com/shuubhamcodes/FLEETPULSE/module/core/domain"
)

func f64(v float64) *float64 { return &v }
func i64(v int64) *int64     { return &v }

func validPayload() *ReadingPayload {
	return &ReadingPayload{
		VehicleID: "VH-1001",
		Lat:       f64(40.7),
		Lon:       f64(-74.0),
		Speed:     f64(55),
		Fuel:      f64(60),
		Temp:      f64(80),
		Timestamp: i64(1700000000),
	}
}

func TestValidateReadingAccepted(t *testing.T) {
	reading, err := ValidateReading(validPayload())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reading.VehicleID != "VH-1001" {
		t.Errorf("vehicle id = %q", reading.VehicleID)
	}
	if !reading.Timestamp.Equal(time.Unix(1700000000, 0)) {
		t.Errorf("timestamp = %v", reading.Timestamp)
	}
}

func TestValidateReadingBoundaries(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *ReadingPayload)
	}{
		{"temp at lower bound", func(p *ReadingPayload) { p.Temp = f64(-40) }},
		{"temp at upper bound", func(p *ReadingPayload) { p.Temp = f64(120) }},
		{"fuel empty", func(p *ReadingPayload) { p.Fuel = f64(0) }},
		{"fuel full", func(p *ReadingPayload) { p.Fuel = f64(100) }},
		{"lat at south pole", func(p *ReadingPayload) { p.Lat = f64(-90) }},
		{"lat at north pole", func(p *ReadingPayload) { p.Lat = f64(90) }},
		{"lon at antimeridian west", func(p *ReadingPayload) { p.Lon = f64(-180) }},
		{"lon at antimeridian east", func(p *ReadingPayload) { p.Lon = f64(180) }},
		{"vehicle standing still", func(p *ReadingPayload) { p.Speed = f64(0) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPayload()
			tt.mutate(p)
			if _, err := ValidateReading(p); err != nil {
				t.Errorf("boundary value rejected: %v", err)
			}
		})
	}
}

func TestValidateReadingRejected(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *ReadingPayload)
		reason string
	}{
		{"missing vehicle id", func(p *ReadingPayload) { p.VehicleID = "" }, "missing required fields"},
		{"missing lat", func(p *ReadingPayload) { p.Lat = nil }, "missing required fields"},
		{"missing speed", func(p *ReadingPayload) { p.Speed = nil }, "missing required fields"},
		{"missing fuel", func(p *ReadingPayload) { p.Fuel = nil }, "missing required fields"},
		{"missing timestamp", func(p *ReadingPayload) { p.Timestamp = nil }, "missing required fields"},
		{"temp too cold", func(p *ReadingPayload) { p.Temp = f64(-40.1) }, "temperature out of valid range (-40°C to 120°C)"},
		{"temp too hot", func(p *ReadingPayload) { p.Temp = f64(120.1) }, "temperature out of valid range (-40°C to 120°C)"},
		{"fuel negative", func(p *ReadingPayload) { p.Fuel = f64(-1) }, "fuel must be between 0% and 100%"},
		{"fuel over full", func(p *ReadingPayload) { p.Fuel = f64(100.5) }, "fuel must be between 0% and 100%"},
		{"lat out of range", func(p *ReadingPayload) { p.Lat = f64(90.1) }, "invalid coordinates"},
		{"lon out of range", func(p *ReadingPayload) { p.Lon = f64(-180.5) }, "invalid coordinates"},
		{"negative speed", func(p *ReadingPayload) { p.Speed = f64(-0.1) }, "speed cannot be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPayload()
			tt.mutate(p)
			_, err := ValidateReading(p)
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if verr.Reason != tt.reason {
				t.Errorf("reason = %q, want %q", verr.Reason, tt.reason)
			}
		})
	}
}

// A payload with several problems reports the highest priority one.
func TestValidateReadingFirstFailureWins(t *testing.T) {
	p := validPayload()
	p.Temp = f64(200)
	p.Fuel = f64(-5)
	p.Lat = nil

	_, err := ValidateReading(p)
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if verr.Reason != "missing required fields" {
		t.Errorf("reason = %q, want missing required fields", verr.Reason)
	}

	p = validPayload()
	p.Temp = f64(200)
	p.Fuel = f64(-5)
	_, err = ValidateReading(p)
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if verr.Reason != "temperature out of valid range (-40°C to 120°C)" {
		t.Errorf("reason = %q, want the temperature reason", verr.Reason)
	}
}
