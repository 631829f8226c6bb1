package service

import (
	"context"
	"fmt"

	"github.com/shuubhamcodes/FLEETPULSE/module/core/domain"
	"github.com/shuubhamcodes/FLEETPULSE/module/core/internal/repository/database"
)

type MaintenanceService struct {
	roles database.UserRoleRepository
	logs  database.MaintenanceRepository
}

func NewMaintenanceService(roles database.UserRoleRepository, logs database.MaintenanceRepository) *MaintenanceService {
	return &MaintenanceService{roles: roles, logs: logs}
}

// Log records a maintenance entry. Only technicians may write; an
// unknown user or role is forbidden, not an internal error.
func (s *MaintenanceService) Log(ctx context.Context, userID string, entry *domain.MaintenanceLog) error {
	role, err := s.roles.GetRole(ctx, userID)
	if err != nil {
		return fmt.Errorf("resolve role for %s: %w", userID, err)
	}
	if !role.CanLogMaintenance() {
		return domain.ErrForbidden
	}

	entry.LoggedBy = userID
	return s.logs.Insert(ctx, entry)
}

func (s *MaintenanceService) History(ctx context.Context, vehicleID string) ([]domain.MaintenanceLog, error) {
	return s.logs.ListByVehicle(ctx, vehicleID)
}
