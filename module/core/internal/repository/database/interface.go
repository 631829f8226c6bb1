package database

import (
	"context"

	"github.com/shuubhamcodes/FLEETPULSE/module/core/domain"
)

type ReadingRepository interface {
	Insert(ctx context.Context, r *domain.Reading) error
}

type AlertRepository interface {
	Insert(ctx context.Context, a *domain.Alert) error
}

type NotificationRepository interface {
	Insert(ctx context.Context, n *domain.Notification) error
}

type GeofenceRepository interface {
	ListAll(ctx context.Context) ([]domain.Geofence, error)
}

type UserRoleRepository interface {
	// GetRole returns RoleUnknown without error when the user has no
	// role assignment.
	GetRole(ctx context.Context, userID string) (domain.Role, error)
	ListUserIDsByRoles(ctx context.Context, roles []domain.Role) ([]string, error)
}

type RouteRepository interface {
	// GetExpectedPath returns nil without error when the vehicle has no
	// planned route.
	GetExpectedPath(ctx context.Context, vehicleID string) (domain.ExpectedPath, error)
}

type MaintenanceRepository interface {
	Insert(ctx context.Context, m *domain.MaintenanceLog) error
	ListByVehicle(ctx context.Context, vehicleID string) ([]domain.MaintenanceLog, error)
}
