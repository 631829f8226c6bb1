package service

import (
	"context"
	"log"

	"github.com/shuubhamcodes/FLEETPULSE/module/core/domain"
	"github.com/shuubhamcodes/FLEETPULSE/module/core/internal/repository/database"
	"github.com/shuubhamcodes/FLEETPULSE/module/core/internal/repository/publisher"
)

type thresholdRule struct {
	Type      domain.AlertType
	Severity  domain.AlertSeverity
	Message   string
	Triggered func(r *domain.Reading) bool
}

var thresholdRules = []thresholdRule{
	{
		Type:     domain.AlertTemp,
		Severity: domain.SeverityHigh,
		Message:  "High engine temperature",
		Triggered: func(r *domain.Reading) bool {
			return r.Temp > 90
		},
	},
	{
		Type:     domain.AlertFuel,
		Severity: domain.SeverityMedium,
		Message:  "Low fuel level",
		Triggered: func(r *domain.Reading) bool {
			return r.Fuel < 20
		},
	},
}

// EvaluateThresholds derives alert drafts from a single reading. Every
// rule is checked on every reading; the conditions are independent, not
// mutually exclusive.
func EvaluateThresholds(r *domain.Reading) []*domain.Alert {
	var drafts []*domain.Alert
	for _, rule := range thresholdRules {
		if rule.Triggered(r) {
			drafts = append(drafts, domain.NewAlert(r.VehicleID, rule.Type, rule.Severity, rule.Message))
		}
	}
	return drafts
}

type ThresholdService struct {
	alerts database.AlertRepository
	pub    publisher.AlertPublisher
}

func NewThresholdService(alerts database.AlertRepository, pub publisher.AlertPublisher) *ThresholdService {
	return &ThresholdService{alerts: alerts, pub: pub}
}

// Evaluate persists every triggered draft independently. A failed write
// is logged and must not stop the remaining drafts, and no failure here
// ever reaches the ingestion caller.
func (s *ThresholdService) Evaluate(ctx context.Context, r *domain.Reading) []*domain.Alert {
	drafts := EvaluateThresholds(r)
	for _, alert := range drafts {
		if err := s.alerts.Insert(ctx, alert); err != nil {
			log.Printf("threshold: insert %s alert for %s: %v", alert.Type, alert.VehicleID, err)
			continue
		}
		if err := s.pub.PublishAlert(ctx, alert); err != nil {
			log.Printf("threshold: publish %s alert for %s: %v", alert.Type, alert.VehicleID, err)
		}
	}
	return drafts
}
