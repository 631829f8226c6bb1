package domain

import "time"

type MaintenanceLog struct {
	VehicleID   string
	Description string
	ServicedAt  time.Time
	LoggedBy    string
}
