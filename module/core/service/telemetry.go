package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/shuubhamcodes/FLEETPULSE/module/core/domain"
	"github.com/shuubhamcodes/FLEETPULSE/module/core/internal/repository/database"
)

type thresholdEvaluator interface {
	Evaluate(ctx context.Context, r *domain.Reading) []*domain.Alert
}

type geofenceEvaluator interface {
	Evaluate(ctx context.Context, r *domain.Reading) []*domain.Notification
}

type routeEvaluator interface {
	Evaluate(ctx context.Context, r *domain.Reading) bool
}

type TelemetryService struct {
	readings  database.ReadingRepository
	threshold thresholdEvaluator
	geofence  geofenceEvaluator
	route     routeEvaluator
}

func NewTelemetryService(
	readings database.ReadingRepository,
	threshold thresholdEvaluator,
	geofence geofenceEvaluator,
	route routeEvaluator,
) *TelemetryService {
	return &TelemetryService{
		readings:  readings,
		threshold: threshold,
		geofence:  geofence,
		route:     route,
	}
}

// Ingest validates and persists one reading, then runs the three
// evaluators concurrently. They share no mutable state and each writes
// to the store on its own, so no ordering is needed between them. The
// evaluator context is detached from the request so a disconnecting
// caller cannot abort an alert write already in flight.
func (s *TelemetryService) Ingest(ctx context.Context, p *ReadingPayload) error {
	reading, err := ValidateReading(p)
	if err != nil {
		return err
	}

	if err := s.readings.Insert(ctx, reading); err != nil {
		return fmt.Errorf("insert reading: %w", err)
	}

	evalCtx := context.WithoutCancel(ctx)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		s.threshold.Evaluate(evalCtx, reading)
	}()
	go func() {
		defer wg.Done()
		s.geofence.Evaluate(evalCtx, reading)
	}()
	go func() {
		defer wg.Done()
		s.route.Evaluate(evalCtx, reading)
	}()
	wg.Wait()

	return nil
}
