package postgres

import (
	"context"
	"database/sql"

	"github.com/shuubhamcodes/FLEETPULSE/module/core/domain"
	"github.com/shuubhamcodes/FLEETPULSE/module/core/internal/repository/database"
)

var _ database.AlertRepository = (*AlertRepo)(nil)

type AlertRepo struct {
	db *sql.DB
}

func NewAlertRepo(db *sql.DB) *AlertRepo {
	return &AlertRepo{db: db}
}

func (r *AlertRepo) Insert(ctx context.Context, a *domain.Alert) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO alerts (vehicle_id, type, severity, message, status) VALUES ($1, $2, $3, $4, $5)`,
		a.VehicleID, string(a.Type), string(a.Severity), a.Message, string(a.Status),
	)
	return err
}
