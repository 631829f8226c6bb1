package core

import (
	"database/sql"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/gin-gonic/gin"
	amqp "github.com/rabbitmq/amqp091-go"
	goredis "github.com/redis/go-redis/v9"

	"github.com/shuubhamcodes/FLEETPULSE/module/core/internal/auth"
	httphandler "github.com/shuubhamcodes/FLEETPULSE/module/core/internal/handler/http"
	"github.com/shuubhamcodes/FLEETPULSE/module/core/internal/handler/subscriber"
	"github.com/shuubhamcodes/FLEETPULSE/module/core/internal/repository/cache/redis"
	"github.com/shuubhamcodes/FLEETPULSE/module/core/internal/repository/database/postgres"
	"github.com/shuubhamcodes/FLEETPULSE/module/core/internal/repository/publisher/rabbitmq"
	"github.com/shuubhamcodes/FLEETPULSE/module/core/service"
)

type Options struct {
	JWTSecret        string
	GeofenceStateTTL time.Duration
}

type Module struct {
	telemetryHandler   *httphandler.TelemetryHandler
	maintenanceHandler *httphandler.MaintenanceHandler
	authMiddleware     *httphandler.AuthMiddleware
	telemetrySub       *subscriber.TelemetrySubscriber
}

// Build wires repositories, services and handlers together. The caller
// owns the external clients and their lifecycles.
func Build(
	db *sql.DB,
	amqpConn *amqp.Connection,
	mqttClient mqtt.Client,
	redisClient *goredis.Client,
	opts Options,
) (*Module, error) {
	readingRepo := postgres.NewReadingRepo(db)
	alertRepo := postgres.NewAlertRepo(db)
	notificationRepo := postgres.NewNotificationRepo(db)
	geofenceRepo := postgres.NewGeofenceRepo(db)
	userRoleRepo := postgres.NewUserRoleRepo(db)
	routeRepo := postgres.NewRouteRepo(db)
	maintenanceRepo := postgres.NewMaintenanceRepo(db)

	alertPub, err := rabbitmq.NewAlertPublisher(amqpConn)
	if err != nil {
		return nil, fmt.Errorf("alert publisher: %w", err)
	}
	containment := redis.NewContainmentStore(redisClient, opts.GeofenceStateTTL)

	thresholdSvc := service.NewThresholdService(alertRepo, alertPub)
	geofenceSvc := service.NewGeofenceService(geofenceRepo, notificationRepo, userRoleRepo, containment)
	routeSvc := service.NewRouteService(routeRepo, alertRepo, alertPub)
	telemetrySvc := service.NewTelemetryService(readingRepo, thresholdSvc, geofenceSvc, routeSvc)
	maintenanceSvc := service.NewMaintenanceService(userRoleRepo, maintenanceRepo)

	verifier, err := auth.NewJWTVerifier(opts.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("jwt verifier: %w", err)
	}

	return &Module{
		telemetryHandler:   httphandler.NewTelemetryHandler(telemetrySvc),
		maintenanceHandler: httphandler.NewMaintenanceHandler(maintenanceSvc),
		authMiddleware:     httphandler.NewAuthMiddleware(verifier),
		telemetrySub:       subscriber.NewTelemetrySubscriber(mqttClient, telemetrySvc),
	}, nil
}

// RegisterRoutes mounts every HTTP endpoint behind bearer auth.
func (m *Module) RegisterRoutes(r *gin.RouterGroup) {
	r.Use(m.authMiddleware.Wrap())
	m.telemetryHandler.Register(r)
	m.maintenanceHandler.Register(r)
}

func (m *Module) StartSubscribers() error {
	return m.telemetrySub.Start()
}
