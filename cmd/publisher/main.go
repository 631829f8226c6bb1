// Command publisher emits synthetic vehicle telemetry over MQTT for
// local development.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/shuubhamcodes/FLEETPULSE/config"
)

type readingMessage struct {
	VehicleID string  `json:"vehicle_id"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	Speed     float64 `json:"speed"`
	Fuel      float64 `json:"fuel"`
	Temp      float64 `json:"temp"`
	Timestamp int64   `json:"timestamp"`
}

var vehicleIDs = []string{"VH-1001", "VH-1002", "VH-1003", "VH-1004"}

func main() {
	interval := flag.Duration("interval", 2*time.Second, "delay between published readings")
	flag.Parse()

	cfg := config.Load()
	cfg.MQTTClientID = "fleetpulse-publisher"

	client, err := config.NewMQTT(cfg)
	if err != nil {
		log.Fatalf("mqtt: %v", err)
	}
	defer client.Disconnect(250)

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	log.Printf("publishing every %s", *interval)
	for range ticker.C {
		msg := randomReading()
		body, err := json.Marshal(msg)
		if err != nil {
			log.Printf("marshal: %v", err)
			continue
		}

		topic := fmt.Sprintf("/fleet/vehicle/%s/telemetry", msg.VehicleID)
		token := client.Publish(topic, 1, false, body)
		token.Wait()
		if token.Error() != nil {
			log.Printf("publish %s: %v", topic, token.Error())
			continue
		}
		log.Printf("published %s fuel=%.1f temp=%.1f", msg.VehicleID, msg.Fuel, msg.Temp)
	}
}

func randomReading() readingMessage {
	return readingMessage{
		VehicleID: vehicleIDs[rand.Intn(len(vehicleIDs))],
		Lat:       40.0 + rand.Float64()*0.5,
		Lon:       -74.0 + rand.Float64()*0.5,
		Speed:     rand.Float64() * 120,
		Fuel:      rand.Float64() * 100,
		Temp:      60 + rand.Float64()*50,
		Timestamp: time.Now().Unix(),
	}
}
