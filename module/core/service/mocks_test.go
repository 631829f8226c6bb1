package service

import (
	"context"

	"github.com/shuubhamcodes/FLEETPULSE/module/core/domain"
)

type readingRepoMock struct {
	insert func(ctx context.Context, r *domain.Reading) error
}

func (m *readingRepoMock) Insert(ctx context.Context, r *domain.Reading) error {
	return m.insert(ctx, r)
}

type alertRepoMock struct {
	insert func(ctx context.Context, a *domain.Alert) error
}

func (m *alertRepoMock) Insert(ctx context.Context, a *domain.Alert) error {
	return m.insert(ctx, a)
}

type notificationRepoMock struct {
	insert func(ctx context.Context, n *domain.Notification) error
}

func (m *notificationRepoMock) Insert(ctx context.Context, n *domain.Notification) error {
	return m.insert(ctx, n)
}

type geofenceRepoMock struct {
	listAll func(ctx context.Context) ([]domain.Geofence, error)
}

func (m *geofenceRepoMock) ListAll(ctx context.Context) ([]domain.Geofence, error) {
	return m.listAll(ctx)
}

type userRoleRepoMock struct {
	getRole            func(ctx context.Context, userID string) (domain.Role, error)
	listUserIDsByRoles func(ctx context.Context, roles []domain.Role) ([]string, error)
}

func (m *userRoleRepoMock) GetRole(ctx context.Context, userID string) (domain.Role, error) {
	return m.getRole(ctx, userID)
}

func (m *userRoleRepoMock) ListUserIDsByRoles(ctx context.Context, roles []domain.Role) ([]string, error) {
	return m.listUserIDsByRoles(ctx, roles)
}

type routeRepoMock struct {
	getExpectedPath func(ctx context.Context, vehicleID string) (domain.ExpectedPath, error)
}

func (m *routeRepoMock) GetExpectedPath(ctx context.Context, vehicleID string) (domain.ExpectedPath, error) {
	return m.getExpectedPath(ctx, vehicleID)
}

type maintenanceRepoMock struct {
	insert        func(ctx context.Context, m *domain.MaintenanceLog) error
	listByVehicle func(ctx context.Context, vehicleID string) ([]domain.MaintenanceLog, error)
}

func (m *maintenanceRepoMock) Insert(ctx context.Context, entry *domain.MaintenanceLog) error {
	return m.insert(ctx, entry)
}

func (m *maintenanceRepoMock) ListByVehicle(ctx context.Context, vehicleID string) ([]domain.MaintenanceLog, error) {
	return m.listByVehicle(ctx, vehicleID)
}

type alertPublisherMock struct {
	publishAlert func(ctx context.Context, alert *domain.Alert) error
}

func (m *alertPublisherMock) PublishAlert(ctx context.Context, alert *domain.Alert) error {
	return m.publishAlert(ctx, alert)
}

type containmentStoreMock struct {
	lastContained func(ctx context.Context, vehicleID string) ([]string, error)
	setContained  func(ctx context.Context, vehicleID string, locationNames []string) error
}

func (m *containmentStoreMock) LastContained(ctx context.Context, vehicleID string) ([]string, error) {
	return m.lastContained(ctx, vehicleID)
}

func (m *containmentStoreMock) SetContained(ctx context.Context, vehicleID string, locationNames []string) error {
	return m.setContained(ctx, vehicleID, locationNames)
}
