package postgres

import (
	"context"
	"database/sql"

	"github.com/shuubhamcodes/FLEETPULSE/module/core/domain"
	"github.com/shuubhamcodes/FLEETPULSE/module/core/internal/repository/database"
)

var _ database.ReadingRepository = (*ReadingRepo)(nil)

type ReadingRepo struct {
	db *sql.DB
}

func NewReadingRepo(db *sql.DB) *ReadingRepo {
	return &ReadingRepo{db: db}
}

func (r *ReadingRepo) Insert(ctx context.Context, reading *domain.Reading) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO vehicle_readings (vehicle_id, lat, lon, speed, fuel, temp, timestamp) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		reading.VehicleID, reading.Lat, reading.Lon, reading.Speed, reading.Fuel, reading.Temp, reading.Timestamp,
	)
	return err
}
