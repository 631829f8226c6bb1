package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shuubhamcodes/FLEETPULSE/module/core/domain"
)

func reading(temp, fuel float64) *domain.Reading {
	return &domain.Reading{
		VehicleID: "VH-1001",
		Lat:       40.7,
		Lon:       -74.0,
		Speed:     55,
		Fuel:      fuel,
		Temp:      temp,
		Timestamp: time.Unix(1700000000, 0),
	}
}

func TestEvaluateThresholds(t *testing.T) {
	tests := []struct {
		name  string
		temp  float64
		fuel  float64
		types []domain.AlertType
	}{
		{"nothing triggered", 80, 60, nil},
		{"temp just over limit", 90.1, 60, []domain.AlertType{domain.AlertTemp}},
		{"temp exactly at limit", 90, 60, nil},
		{"fuel just under limit", 80, 19.9, []domain.AlertType{domain.AlertFuel}},
		{"fuel exactly at limit", 80, 20, nil},
		{"both triggered", 95, 10, []domain.AlertType{domain.AlertTemp, domain.AlertFuel}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			drafts := EvaluateThresholds(reading(tt.temp, tt.fuel))
			if len(drafts) != len(tt.types) {
				t.Fatalf("got %d alerts, want %d", len(drafts), len(tt.types))
			}
			for i, want := range tt.types {
				if drafts[i].Type != want {
					t.Errorf("alert %d type = %s, want %s", i, drafts[i].Type, want)
				}
				if drafts[i].Status != domain.AlertStatusNew {
					t.Errorf("alert %d status = %s, want new", i, drafts[i].Status)
				}
			}
		})
	}
}

func TestEvaluateThresholdsContent(t *testing.T) {
	drafts := EvaluateThresholds(reading(95, 60))
	if len(drafts) != 1 {
		t.Fatalf("got %d alerts, want 1", len(drafts))
	}
	a := drafts[0]
	if a.Severity != domain.SeverityHigh {
		t.Errorf("severity = %s, want high", a.Severity)
	}
	if a.Message != "High engine temperature" {
		t.Errorf("message = %q", a.Message)
	}

	drafts = EvaluateThresholds(reading(80, 5))
	if len(drafts) != 1 {
		t.Fatalf("got %d alerts, want 1", len(drafts))
	}
	a = drafts[0]
	if a.Severity != domain.SeverityMedium {
		t.Errorf("severity = %s, want medium", a.Severity)
	}
	if a.Message != "Low fuel level" {
		t.Errorf("message = %q", a.Message)
	}
}

func TestThresholdServiceInsertsAndPublishes(t *testing.T) {
	var inserted, published []*domain.Alert
	svc := NewThresholdService(
		&alertRepoMock{insert: func(_ context.Context, a *domain.Alert) error {
			inserted = append(inserted, a)
			return nil
		}},
		&alertPublisherMock{publishAlert: func(_ context.Context, a *domain.Alert) error {
			published = append(published, a)
			return nil
		}},
	)

	drafts := svc.Evaluate(context.Background(), reading(95, 10))
	if len(drafts) != 2 || len(inserted) != 2 || len(published) != 2 {
		t.Fatalf("drafts=%d inserted=%d published=%d, want 2 each", len(drafts), len(inserted), len(published))
	}
}

// A failed temp insert must not block the fuel alert, and a failed
// insert must suppress the publish for that alert only.
func TestThresholdServiceIsolatesFailures(t *testing.T) {
	var published []*domain.Alert
	svc := NewThresholdService(
		&alertRepoMock{insert: func(_ context.Context, a *domain.Alert) error {
			if a.Type == domain.AlertTemp {
				return errors.New("db down")
			}
			return nil
		}},
		&alertPublisherMock{publishAlert: func(_ context.Context, a *domain.Alert) error {
			published = append(published, a)
			return nil
		}},
	)

	drafts := svc.Evaluate(context.Background(), reading(95, 10))
	if len(drafts) != 2 {
		t.Fatalf("got %d drafts, want 2", len(drafts))
	}
	if len(published) != 1 || published[0].Type != domain.AlertFuel {
		t.Fatalf("published = %+v, want only the fuel alert", published)
	}
}

func TestThresholdServicePublishFailureIsAbsorbed(t *testing.T) {
	svc := NewThresholdService(
		&alertRepoMock{insert: func(context.Context, *domain.Alert) error { return nil }},
		&alertPublisherMock{publishAlert: func(context.Context, *domain.Alert) error {
			return errors.New("broker down")
		}},
	)

	drafts := svc.Evaluate(context.Background(), reading(95, 60))
	if len(drafts) != 1 {
		t.Fatalf("got %d drafts, want 1", len(drafts))
	}
}
