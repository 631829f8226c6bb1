package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	"github.com/shuubhamcodes/FLEETPULSE/module/core/domain"
	"github.com/shuubhamcodes/FLEETPULSE/module/core/internal/repository/database"
)

var _ database.GeofenceRepository = (*GeofenceRepo)(nil)

type GeofenceRepo struct {
	db *sql.DB
}

func NewGeofenceRepo(db *sql.DB) *GeofenceRepo {
	return &GeofenceRepo{db: db}
}

// ListAll returns every geofence with a parseable boundary. A malformed
// row is logged and skipped; one bad polygon must not block evaluation
// of the rest.
func (r *GeofenceRepo) ListAll(ctx context.Context) ([]domain.Geofence, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT location_name, boundary FROM geofences`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var results []domain.Geofence
	for rows.Next() {
		var name string
		var raw []byte
		if err := rows.Scan(&name, &raw); err != nil {
			return nil, err
		}
		boundary, err := parseBoundary(raw)
		if err != nil {
			log.Printf("geofences: %q has a malformed boundary, skipping: %v", name, err)
			continue
		}
		results = append(results, domain.Geofence{LocationName: name, Boundary: boundary})
	}
	return results, rows.Err()
}

// parseBoundary decodes a JSON ring of [lon, lat] pairs.
func parseBoundary(raw []byte) ([]domain.Point, error) {
	var coords [][]float64
	if err := json.Unmarshal(raw, &coords); err != nil {
		return nil, err
	}
	if len(coords) < 3 {
		return nil, fmt.Errorf("ring has %d vertices, need at least 3", len(coords))
	}
	points := make([]domain.Point, len(coords))
	for i, c := range coords {
		if len(c) != 2 {
			return nil, fmt.Errorf("vertex %d has %d coordinates", i, len(c))
		}
		points[i] = domain.Point{Lon: c[0], Lat: c[1]}
	}
	return points, nil
}
