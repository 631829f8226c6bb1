package cache

import "context"

// ContainmentStore remembers, per vehicle, which geofences the vehicle
// was inside at its previous evaluation, so entry can be detected as a
// transition rather than steady-state presence.
type ContainmentStore interface {
	LastContained(ctx context.Context, vehicleID string) ([]string, error)
	SetContained(ctx context.Context, vehicleID string, locationNames []string) error
}
