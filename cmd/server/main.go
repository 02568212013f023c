package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/vytor/dsaportal/internal/bootstrap"
	"github.com/vytor/dsaportal/internal/config"
	"github.com/vytor/dsaportal/internal/logger"
)

func main() {
	cfg := config.Load()

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}

	log.Info("===========================================")
	log.Info("DSA Portal Server Starting")
	log.Info("===========================================")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("api_base_url=%s", cfg.APIBaseURL)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("request_timeout=%v", cfg.RequestTimeout)
	log.Debug("rate_limit_rps=%v burst=%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	log.Debug("sync_worker_count=%d", cfg.SyncWorkerCount)
	log.Debug("sync_queue_size=%d", cfg.SyncQueueSize)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = logger.NewContext(ctx, log)

	app, err := bootstrap.New(ctx, cfg)
	if err != nil {
		log.Error("failed to start: %v", err)
		os.Exit(1)
	}

	if err := app.Serve(ctx, cfg.Addr); err != nil {
		log.Error("HTTP server error: %v", err)
		app.Close()
		os.Exit(1)
	}

	app.Close()
	log.Info("===========================================")
	log.Info("DSA Portal Server Stopped")
	log.Info("===========================================")
}
