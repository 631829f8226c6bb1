package service

import (
	"context"
	"errors"
	"log"
	"math"

	"github.com/shuubhamcodes/FLEETPULSE/module/core/domain"
	"github.com/shuubhamcodes/FLEETPULSE/module/core/internal/repository/database"
	"github.com/shuubhamcodes/FLEETPULSE/module/core/internal/repository/publisher"
)

const (
	earthRadiusMeters     = 6371000
	routeDeviationMeters  = 100
	routeDeviationMessage = "Vehicle deviated from expected route"
)

type RouteService struct {
	routes database.RouteRepository
	alerts database.AlertRepository
	pub    publisher.AlertPublisher
}

func NewRouteService(routes database.RouteRepository, alerts database.AlertRepository, pub publisher.AlertPublisher) *RouteService {
	return &RouteService{routes: routes, alerts: alerts, pub: pub}
}

// Evaluate classifies the reading against the vehicle's expected path.
// Failures are fail-safe: a missing or malformed path, a store error or
// a non-finite distance is logged and classified as not deviated. The
// classification is returned even when the alert write fails.
func (s *RouteService) Evaluate(ctx context.Context, r *domain.Reading) bool {
	path, err := s.routes.GetExpectedPath(ctx, r.VehicleID)
	if err != nil {
		log.Printf("route: load path for %s: %v", r.VehicleID, err)
		return false
	}
	if path == nil {
		return false
	}

	dist, err := distanceToPathMeters(domain.Point{Lon: r.Lon, Lat: r.Lat}, path)
	if err != nil {
		log.Printf("route: distance for %s: %v", r.VehicleID, err)
		return false
	}
	if dist <= routeDeviationMeters {
		return false
	}

	alert := domain.NewAlert(r.VehicleID, domain.AlertRoute, domain.SeverityHigh, routeDeviationMessage)
	if err := s.alerts.Insert(ctx, alert); err != nil {
		log.Printf("route: insert alert for %s: %v", r.VehicleID, err)
	} else if err := s.pub.PublishAlert(ctx, alert); err != nil {
		log.Printf("route: publish alert for %s: %v", r.VehicleID, err)
	}

	return true
}

// distanceToPathMeters is the minimum distance from p to the polyline.
// Coordinates are degrees, so each segment is projected onto a local
// equirectangular plane around p before taking the perpendicular
// distance; flat lon/lat arithmetic would shrink east-west distances
// away from the equator.
func distanceToPathMeters(p domain.Point, path domain.ExpectedPath) (float64, error) {
	if len(path) < 2 {
		return 0, errors.New("expected path needs at least two vertices")
	}
	min := math.Inf(1)
	for i := 0; i < len(path)-1; i++ {
		if d := pointToSegmentMeters(p, path[i], path[i+1]); d < min {
			min = d
		}
	}
	if math.IsNaN(min) || math.IsInf(min, 0) {
		return 0, errors.New("non-finite distance")
	}
	return min, nil
}

func pointToSegmentMeters(p, a, b domain.Point) float64 {
	if a == b {
		return haversine(p.Lat, p.Lon, a.Lat, a.Lon)
	}

	refLat := toRad(p.Lat)
	px, py := projectMeters(p, refLat)
	ax, ay := projectMeters(a, refLat)
	bx, by := projectMeters(b, refLat)

	dx, dy := bx-ax, by-ay
	t := ((px-ax)*dx + (py-ay)*dy) / (dx*dx + dy*dy)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return math.Hypot(px-(ax+t*dx), py-(ay+t*dy))
}

func projectMeters(pt domain.Point, refLat float64) (x, y float64) {
	x = toRad(pt.Lon) * earthRadiusMeters * math.Cos(refLat)
	y = toRad(pt.Lat) * earthRadiusMeters
	return x, y
}

func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusMeters * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
