package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shuubhamcodes/FLEETPULSE/config"
	"github.com/shuubhamcodes/FLEETPULSE/module/core"
)

func main() {
	cfg := config.Load()

	db, err := config.NewPostgres(cfg)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer func() { _ = db.Close() }()

	amqpConn, err := config.NewRabbitMQ(cfg)
	if err != nil {
		log.Fatalf("rabbitmq: %v", err)
	}
	defer func() { _ = amqpConn.Close() }()

	mqttClient, err := config.NewMQTT(cfg)
	if err != nil {
		log.Fatalf("mqtt: %v", err)
	}
	defer mqttClient.Disconnect(250)

	redisClient, err := config.NewRedis(context.Background(), cfg)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer func() { _ = redisClient.Close() }()

	coreModule, err := core.Build(db, amqpConn, mqttClient, redisClient, core.Options{
		JWTSecret:        cfg.JWTSecret,
		GeofenceStateTTL: time.Duration(cfg.GeofenceStateTTLSeconds) * time.Second,
	})
	if err != nil {
		log.Fatalf("build: %v", err)
	}

	if err := coreModule.StartSubscribers(); err != nil {
		log.Fatalf("subscribe: %v", err)
	}

	r := gin.Default()
	config.NewHealthChecker(db, amqpConn, mqttClient, redisClient).Register(r)
	coreModule.RegisterRoutes(r.Group("/api"))

	log.Printf("listening on :%s", cfg.HTTPPort)
	if err := r.Run(":" + cfg.HTTPPort); err != nil {
		log.Fatalf("serve: %v", err)
	}
}
