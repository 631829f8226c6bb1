package service

import (
	"context"
	"fmt"
	"log"

	"github.com/shuubhamcodes/FLEETPULSE/module/core/domain"
	"github.com/shuubhamcodes/FLEETPULSE/module/core/internal/repository/cache"
	"github.com/shuubhamcodes/FLEETPULSE/module/core/internal/repository/database"
)

type GeofenceService struct {
	geofences     database.GeofenceRepository
	notifications database.NotificationRepository
	userRoles     database.UserRoleRepository
	containment   cache.ContainmentStore
}

func NewGeofenceService(
	geofences database.GeofenceRepository,
	notifications database.NotificationRepository,
	userRoles database.UserRoleRepository,
	containment cache.ContainmentStore,
) *GeofenceService {
	return &GeofenceService{
		geofences:     geofences,
		notifications: notifications,
		userRoles:     userRoles,
		containment:   containment,
	}
}

// Evaluate finds the geofences this reading has newly entered and
// writes one notification per (geofence, eligible user) pair. Entry is
// a transition: geofences the vehicle was already inside at the last
// evaluation do not notify again. Per-geofence and per-user failures
// are logged and skipped so one bad row cannot silence the rest.
func (s *GeofenceService) Evaluate(ctx context.Context, r *domain.Reading) []*domain.Notification {
	fences, err := s.geofences.ListAll(ctx)
	if err != nil {
		log.Printf("geofence: load geofences: %v", err)
		return nil
	}

	point := domain.Point{Lon: r.Lon, Lat: r.Lat}
	var contained []string
	for _, gf := range fences {
		if len(gf.Boundary) < 3 {
			log.Printf("geofence: %q has a degenerate boundary, skipping", gf.LocationName)
			continue
		}
		if pointInPolygon(point, gf.Boundary) {
			contained = append(contained, gf.LocationName)
		}
	}

	previous, err := s.containment.LastContained(ctx, r.VehicleID)
	if err != nil {
		// Degrade to stateless behavior: treat everything contained as
		// newly entered rather than staying silent.
		log.Printf("geofence: containment state for %s: %v", r.VehicleID, err)
		previous = nil
	}
	entered := newlyEntered(contained, previous)

	var emitted []*domain.Notification
	if len(entered) > 0 {
		userIDs, err := s.userRoles.ListUserIDsByRoles(ctx, domain.NotifyRoles())
		if err != nil {
			log.Printf("geofence: resolve notify users: %v", err)
			userIDs = nil
		}
		for _, name := range entered {
			for _, userID := range userIDs {
				n := &domain.Notification{
					UserID:  userID,
					Type:    domain.NotificationGeofence,
					Message: fmt.Sprintf("Vehicle %s has entered %s", r.VehicleID, name),
				}
				if err := s.notifications.Insert(ctx, n); err != nil {
					log.Printf("geofence: notify user %s about %q: %v", userID, name, err)
					continue
				}
				emitted = append(emitted, n)
			}
		}
	}

	if err := s.containment.SetContained(ctx, r.VehicleID, contained); err != nil {
		log.Printf("geofence: store containment for %s: %v", r.VehicleID, err)
	}

	return emitted
}

func newlyEntered(contained, previous []string) []string {
	if len(contained) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(previous))
	for _, name := range previous {
		seen[name] = true
	}
	var entered []string
	for _, name := range contained {
		if !seen[name] {
			entered = append(entered, name)
		}
	}
	return entered
}

// pointInPolygon runs an even-odd ray cast toward +lon over the outer
// ring. Boundary convention: a point exactly on the west edge of a
// square counts as inside, on the east edge as outside.
func pointInPolygon(p domain.Point, ring []domain.Point) bool {
	inside := false
	j := len(ring) - 1
	for i := 0; i < len(ring); i++ {
		a, b := ring[i], ring[j]
		if (a.Lat > p.Lat) != (b.Lat > p.Lat) {
			x := (b.Lon-a.Lon)*(p.Lat-a.Lat)/(b.Lat-a.Lat) + a.Lon
			if p.Lon < x {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}
