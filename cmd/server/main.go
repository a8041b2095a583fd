package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gps_tracker/internal/config"
	"gps_tracker/internal/controllers"
	"gps_tracker/internal/geoip"
	"gps_tracker/internal/logger"
	"gps_tracker/internal/middleware"
	"gps_tracker/internal/routes"
)

func main() {
	// Initialize structured logging to stdout and file
	logger.Setup()

	cfg := config.Load()

	// Connect to the database; the handle is injected into the handlers
	// and closed on shutdown.
	db, err := config.OpenDB(cfg)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	geoClient := geoip.NewClient(cfg.GeoAPIBaseURL)

	lc := controllers.NewLocationController(db, geoClient)
	cc := controllers.NewClientConfigController(cfg.ClientVerbosity)

	// Setup Gin router, wrapped with CORS
	r := routes.SetupRouter(lc, cc)
	handler := middleware.EnableCORS(r)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	go func() {
		log.Printf("🚀 Server running at :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server failed: %v", err)
		}
	}()

	// Block until a shutdown signal, then drain in-flight requests and
	// release the database.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}
