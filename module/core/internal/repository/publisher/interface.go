package publisher

import (
	"context"

	"github.com/shuubhamcodes/FLEETPULSE/module/core/domain"
)

type AlertPublisher interface {
	PublishAlert(ctx context.Context, alert *domain.Alert) error
}
