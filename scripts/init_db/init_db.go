// Command init_db creates the Postgres schema used by the server.
package main

import (
	"database/sql"
	"log"

	_ "github.com/lib/pq"

	"github.com/shuubhamcodes/FLEETPULSE/config"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS vehicle_readings (
		id BIGSERIAL PRIMARY KEY,
		vehicle_id TEXT NOT NULL,
		lat DOUBLE PRECISION NOT NULL,
		lon DOUBLE PRECISION NOT NULL,
		speed DOUBLE PRECISION NOT NULL,
		fuel DOUBLE PRECISION NOT NULL,
		temp DOUBLE PRECISION NOT NULL,
		timestamp TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_vehicle_readings_vehicle ON vehicle_readings (vehicle_id, timestamp)`,
	`CREATE TABLE IF NOT EXISTS alerts (
		id BIGSERIAL PRIMARY KEY,
		vehicle_id TEXT NOT NULL,
		type TEXT NOT NULL,
		severity TEXT NOT NULL,
		message TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'new',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS notifications (
		id BIGSERIAL PRIMARY KEY,
		user_id TEXT NOT NULL,
		type TEXT NOT NULL,
		message TEXT NOT NULL,
		read BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS geofences (
		id BIGSERIAL PRIMARY KEY,
		location_name TEXT NOT NULL,
		boundary JSONB NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS user_roles (
		user_id TEXT PRIMARY KEY,
		role TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS vehicle_routes (
		vehicle_id TEXT PRIMARY KEY,
		path JSONB NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS maintenance_logs (
		id BIGSERIAL PRIMARY KEY,
		vehicle_id TEXT NOT NULL,
		description TEXT NOT NULL,
		serviced_at TIMESTAMPTZ NOT NULL,
		logged_by TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_maintenance_logs_vehicle ON maintenance_logs (vehicle_id, serviced_at)`,
}

func main() {
	cfg := config.Load()

	db, err := sql.Open("postgres", cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("open: %v", err)
	}
	defer func() { _ = db.Close() }()

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Fatalf("exec: %v\n%s", err, stmt)
		}
	}
	log.Println("schema ready")
}
