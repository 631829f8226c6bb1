package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shuubhamcodes/FLEETPULSE/module/core/domain"
	"github.com/shuubhamcodes/FLEETPULSE/module/core/internal/repository/database"
)

var _ database.RouteRepository = (*RouteRepo)(nil)

type RouteRepo struct {
	db *sql.DB
}

func NewRouteRepo(db *sql.DB) *RouteRepo {
	return &RouteRepo{db: db}
}

func (r *RouteRepo) GetExpectedPath(ctx context.Context, vehicleID string) (domain.ExpectedPath, error) {
	var raw []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT path FROM vehicle_routes WHERE vehicle_id = $1`,
		vehicleID,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var coords [][]float64
	if err := json.Unmarshal(raw, &coords); err != nil {
		return nil, fmt.Errorf("malformed path for %s: %w", vehicleID, err)
	}
	path := make(domain.ExpectedPath, len(coords))
	for i, c := range coords {
		if len(c) != 2 {
			return nil, fmt.Errorf("malformed path vertex %d for %s", i, vehicleID)
		}
		path[i] = domain.Point{Lon: c[0], Lat: c[1]}
	}
	return path, nil
}
