package main

import (
	"log"
	"time"

	"roni/middleware"
	"roni/pkg/config"
	"roni/pkg/store"
	"roni/routes"
)

func main() {
	// config loads via package init()

	st, err := store.Open()
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}

	middleware.SetRateLimitConfig(
		time.Duration(config.RateLimitWindowSeconds)*time.Second,
		config.RateLimitCapacity,
	)

	r := routes.NewRouter(st)
	if err := r.Run(":" + config.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
