package main

import (
	"context"
	"log"

	"seat-reservation/cmd"
	"seat-reservation/internal/data/cache"
	"seat-reservation/internal/data/repository"
	"seat-reservation/internal/notify"
	"seat-reservation/internal/queue"
	"seat-reservation/internal/usecase"
	"seat-reservation/internal/wire"
	"seat-reservation/pkg/database"
	"seat-reservation/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Optional Redis: seat-map cache plus the cross-instance change feed.
	rdb := database.InitRedis(config.Redis)
	if rdb != nil {
		defer rdb.Close()
	} else {
		logger.Warn("Redis unavailable, running without seat cache and cross-instance signals")
	}
	seats := cache.NewSeatCache(rdb, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := notify.NewHub(logger)
	feed := notify.NewRedisBridge(ctx, hub, rdb, logger)

	// Optional RabbitMQ publisher for booking lifecycle events. Assign to the
	// interface only when configured, so the nil check in the service holds.
	var queuePub usecase.QueuePublisher
	if pub := queue.NewPublisher(config.Queue.URL, logger); pub != nil {
		queuePub = pub
	}

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, hub, feed, seats, queuePub, logger)

	// Seed the admin account on first run
	if err := app.Service.Auth.EnsureDefaultAdmin(ctx); err != nil {
		logger.Fatal("Failed to ensure default admin", zap.Error(err))
	}

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
