package main

import (
	"context"
	"log"
	"time"

	"estate-listing-be/internal/bootstrap"
	"estate-listing-be/internal/config"
	"estate-listing-be/internal/server"
	"estate-listing-be/internal/tracer"
	"estate-listing-be/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Tracing (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Printf("Tracer shutdown error: %v", err)
		}
	}()

	// 3. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 4. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 5. Start Background Services
	go func() {
		log.Println("Background: Starting Consumer Service...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	go func() {
		interval := time.Duration(cfg.Worker.SweepIntervalMinutes) * time.Minute
		log.Printf("Background: Starting Listing Sweeper (every %s)...", interval)
		container.Sweeper.Run(context.Background(), interval)
	}()

	// 6. Initialize Server
	srv := server.New(cfg, container)

	// 7. Run Server
	log.Fatal(srv.Run())
}
