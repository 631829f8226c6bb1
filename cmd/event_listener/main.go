// Command event_listener tails the vehicle alert queue and prints every
// alert, for local development.
package main

import (
	"log"

	"github.com/shuubhamcodes/FLEETPULSE/config"
)

func main() {
	cfg := config.Load()

	conn, err := config.NewRabbitMQ(cfg)
	if err != nil {
		log.Fatalf("rabbitmq: %v", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("channel: %v", err)
	}
	defer func() { _ = ch.Close() }()

	msgs, err := ch.Consume("vehicle_alerts", "", true, false, false, false, nil)
	if err != nil {
		log.Fatalf("consume: %v", err)
	}

	log.Println("waiting for alerts")
	for msg := range msgs {
		log.Printf("alert: %s", msg.Body)
	}
}
