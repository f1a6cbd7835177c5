package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"incident-board/config"
	"incident-board/internals/app"
	"incident-board/internals/server"
	"incident-board/pkg/db"
	"incident-board/pkg/logger"
)

func main() {
	// Load envs
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "env.yaml"
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	// Get Context with signals attached -> when ever a signal occurs , then `Done` channel of ctx will get closed
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize Base/global logger
	log := logger.Init(cfg)
	log.Info().Msg("logger initialized")

	// Initialize DB Pool
	dbPool, err := db.ConnectToDB(ctx, &cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize db pool")
	}
	log.Info().Msg("database pool initialized")

	// the checker service owns the tables in production
	if cfg.Env != "production" {
		if err := db.EnsureSchema(ctx, dbPool); err != nil {
			log.Fatal().Err(err).Msg("failed to ensure schema")
		}
	}

	// Inject Dependencies
	container, err := app.NewContainer(ctx, dbPool, cfg, log)
	if err != nil {
		dbPool.Close()
		log.Fatal().Err(err).Msg("failed to initialize dependencies")
	}
	log.Info().Msg("dependencies initialized")

	// snapshot invalidation, no-op without a broker
	app.StartConsumer(ctx, container)

	// Register Routes
	router := app.RegisterRoutes(container)
	log.Info().Msg("routes registered")

	// Start HTTP Server -> Runs in a seperate goroutines in background and receive requests
	srv := server.New(cfg.Port, router, log)
	srv.Start()

	// main goroutine is for gracefull shutdown

	<-ctx.Done() // WAIT FOR SIGNAL
	log.Info().Msg("shutdown signal received")

	// 1. Stop HTTP server (stop accepting requests)
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}

	// 2. Shutdown consumer & infra
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second) // buffer time to close all resources
	defer cancel()

	if err := container.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("dependecies shutdown failed")
	}

	// Shutdown done
	log.Info().Msg("graceful shutdown complete")
}
