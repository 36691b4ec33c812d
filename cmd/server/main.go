package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/daili-wash/partner-api/internal/config"
	"github.com/daili-wash/partner-api/internal/router"
	"github.com/daili-wash/partner-api/internal/seed"
	"github.com/daili-wash/partner-api/internal/store"
	"github.com/daili-wash/partner-api/internal/ws"
)

const defaultSeedCount = 115

func main() {
	cfg := config.Load()
	now := time.Now().In(cfg.Location())

	var orders []store.Order
	if cfg.SeedFile != "" {
		loaded, err := seed.LoadFile(cfg.SeedFile)
		if err != nil {
			log.Fatalf("load seed file: %v", err)
		}
		orders = loaded
		log.Printf("Loaded %d orders from %s", len(orders), cfg.SeedFile)
	} else {
		orders = seed.Generate(defaultSeedCount, 1, now)
		log.Printf("Generated %d demo orders", len(orders))
	}

	orderStore := store.New(orders)
	notificationStore := store.NewNotificationStore(seed.Notifications(now))

	hub := ws.NewHub()
	go hub.Run()

	r := router.New(cfg, orderStore, notificationStore, hub)

	log.Printf("Starting server on :%s", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.Fatal(err)
	}
}
