package postgres

import (
	"context"
	"database/sql"

	"github.com/shuubhamcodes/FLEETPULSE/module/core/domain"
	"github.com/shuubhamcodes/FLEETPULSE/module/core/internal/repository/database"
)

var _ database.MaintenanceRepository = (*MaintenanceRepo)(nil)

type MaintenanceRepo struct {
	db *sql.DB
}

func NewMaintenanceRepo(db *sql.DB) *MaintenanceRepo {
	return &MaintenanceRepo{db: db}
}

func (r *MaintenanceRepo) Insert(ctx context.Context, m *domain.MaintenanceLog) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO maintenance_logs (vehicle_id, description, serviced_at, logged_by) VALUES ($1, $2, $3, $4)`,
		m.VehicleID, m.Description, m.ServicedAt, m.LoggedBy,
	)
	return err
}

func (r *MaintenanceRepo) ListByVehicle(ctx context.Context, vehicleID string) ([]domain.MaintenanceLog, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT vehicle_id, description, serviced_at, logged_by FROM maintenance_logs WHERE vehicle_id = $1 ORDER BY serviced_at DESC`,
		vehicleID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var results []domain.MaintenanceLog
	for rows.Next() {
		var m domain.MaintenanceLog
		if err := rows.Scan(&m.VehicleID, &m.Description, &m.ServicedAt, &m.LoggedBy); err != nil {
			return nil, err
		}
		results = append(results, m)
	}
	return results, rows.Err()
}
