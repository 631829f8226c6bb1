package subscriber

import (
	"context"
	"encoding/json"
	"log"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/shuubhamcodes/FLEETPULSE/module/core/service"
)

const topicPattern = "/fleet/vehicle/+/telemetry"

type telemetryService interface {
	Ingest(ctx context.Context, p *service.ReadingPayload) error
}

type TelemetrySubscriber struct {
	client mqtt.Client
	svc    telemetryService
}

func NewTelemetrySubscriber(client mqtt.Client, svc telemetryService) *TelemetrySubscriber {
	return &TelemetrySubscriber{client: client, svc: svc}
}

func (s *TelemetrySubscriber) Start() error {
	token := s.client.Subscribe(topicPattern, 1, s.handleMessage)
	token.Wait()
	return token.Error()
}

func (s *TelemetrySubscriber) handleMessage(_ mqtt.Client, msg mqtt.Message) {
	var payload service.ReadingPayload
	if err := json.Unmarshal(msg.Payload(), &payload); err != nil {
		log.Printf("telemetry subscriber: malformed payload on %s: %v", msg.Topic(), err)
		return
	}

	if err := s.svc.Ingest(context.Background(), &payload); err != nil {
		log.Printf("telemetry subscriber: ingest failed on %s: %v", msg.Topic(), err)
	}
}
