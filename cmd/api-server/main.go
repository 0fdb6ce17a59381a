package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"cinehub/database"
	"cinehub/internal/config"
	"cinehub/internal/logging"
	"cinehub/internal/microservices/http-api/server"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := logging.New("api-server", cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("database_connect_failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.Close(db)

	if err := database.Migrate(db, logger); err != nil {
		logger.Error("migration_failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rdb, err := database.ConnectRedis(ctx, cfg, logger)
	if err != nil {
		// The cache is optional; run without it.
		logger.Warn("redis_unavailable", slog.String("error", err.Error()))
		rdb = nil
	}
	if rdb != nil {
		defer rdb.Close()
	}

	svcs := server.NewServices(server.NewRepositories(db, rdb, cfg), cfg, logger)
	if err := server.Run(ctx, cfg, svcs, logger); err != nil {
		logger.Error("server_error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
