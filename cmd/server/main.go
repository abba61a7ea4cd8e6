package main // Entry point package

import (
	"log"  // Logging library
	"time" // Durations for the startup retry loop

	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/agencydesk/backoffice-api/internal/config"     // Internal config loader
	"github.com/agencydesk/backoffice-api/internal/database"   // Database bootstrap
	"github.com/agencydesk/backoffice-api/internal/handler"    // HTTP handlers
	"github.com/agencydesk/backoffice-api/internal/middleware" // Rate limiting middleware
	"github.com/agencydesk/backoffice-api/internal/queue"      // Item event consumer
	"github.com/agencydesk/backoffice-api/internal/repository" // Data access layer
	"github.com/agencydesk/backoffice-api/internal/router"     // Route registration
)

func main() {
	cfg := config.Load() // Load environment config

	// Connect to MySQL with a bounded retry loop; the database container may
	// still be starting when the service comes up.
	db, err := database.OpenWithRetry(
		cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName,
		cfg.DBMaxRetries, time.Duration(cfg.DBRetrySecs)*time.Second,
	)
	if err != nil {
		log.Fatalf("database unavailable: %v", err)
	}
	defer db.Close()

	// Repositories hold the query catalog; one per route grouping.
	personnelRepo := repository.NewPersonnelRepo(db)
	statsRepo := repository.NewStatsRepo(db)
	rentalRepo := repository.NewRentalRepo(db)
	scheduleRepo := repository.NewScheduleRepo(db)
	itemRepo := repository.NewItemRepo(db)

	// Optional Redis-backed rate limiter; nil client degrades to a no-op.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; rate limiting disabled")
	}
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	// Background consumer appending item.changed events to logs/items.log.
	go func() {
		if err := queue.StartItemConsumer(); err != nil {
			log.Printf("item consumer stopped: %v", err)
		}
	}()

	e := echo.New() // Create Echo instance
	router.RegisterRoutes(e)
	router.RegisterCatalog(e,
		handler.NewPersonnelHandler(personnelRepo),
		handler.NewStatsHandler(statsRepo),
		handler.NewRentalHandler(rentalRepo),
		handler.NewScheduleHandler(scheduleRepo),
		limiter,
	)
	router.RegisterItems(e, handler.NewItemHandler(itemRepo), limiter)

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
