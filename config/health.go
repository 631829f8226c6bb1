package config

import (
	"database/sql"
	"net/http"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/gin-gonic/gin"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
)

type HealthChecker struct {
	db    *sql.DB
	amqp  *amqp.Connection
	mqtt  mqtt.Client
	redis *redis.Client
}

func NewHealthChecker(db *sql.DB, amqpConn *amqp.Connection, mqttClient mqtt.Client, redisClient *redis.Client) *HealthChecker {
	return &HealthChecker{db: db, amqp: amqpConn, mqtt: mqttClient, redis: redisClient}
}

func (h *HealthChecker) Register(r gin.IRoutes) {
	r.GET("/healthz", h.check)
}

func (h *HealthChecker) check(c *gin.Context) {
	status := map[string]bool{
		"postgres": h.db.PingContext(c.Request.Context()) == nil,
		"rabbitmq": !h.amqp.IsClosed(),
		"mqtt":     h.mqtt.IsConnected(),
		"redis":    h.redis.Ping(c.Request.Context()).Err() == nil,
	}

	for _, ok := range status {
		if !ok {
			c.JSON(http.StatusServiceUnavailable, status)
			return
		}
	}
	c.JSON(http.StatusOK, status)
}
