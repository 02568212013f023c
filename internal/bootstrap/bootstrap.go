// Package bootstrap wires configuration into the running component graph shared by the
// server and CLI binaries.
package bootstrap

import (
	"context"
	"net/http"
	"time"

	"github.com/vytor/dsaportal/internal/api"
	"github.com/vytor/dsaportal/internal/config"
	"github.com/vytor/dsaportal/internal/db"
	"github.com/vytor/dsaportal/internal/gateway"
	"github.com/vytor/dsaportal/internal/jobs"
	"github.com/vytor/dsaportal/internal/logger"
	"github.com/vytor/dsaportal/internal/repository"
	"github.com/vytor/dsaportal/internal/repository/sqlite"
	"github.com/vytor/dsaportal/internal/services"
	"github.com/vytor/dsaportal/internal/session"
	"github.com/vytor/dsaportal/internal/transport"
	"github.com/vytor/dsaportal/internal/worker"
)

const shutdownTimeout = 30 * time.Second

type App struct {
	Config   config.Config
	DB       *db.DB
	Session  *session.Store
	Client   *transport.Client
	Gateways gateway.Set
	Pool     *worker.Pool
	Queue    jobs.ProgressQueue
	SyncLog  repository.SyncRepository
	Portal   services.PortalService
	Sessions services.SessionService
}

// New opens the token store, restores any persisted session and starts the progress
// sync pool. Callers must Close the returned App.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	log := logger.FromContext(ctx).WithPrefix("bootstrap")

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	store := session.New(sqlite.NewTokenRepository(database.DB))
	client := transport.New(cfg.APIBaseURL,
		transport.WithTokenSource(store),
		transport.WithTimeout(cfg.RequestTimeout),
		transport.WithRateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst),
	)
	gw := gateway.NewSet(client, store)

	if err := store.Restore(ctx, gw.Auth); err != nil {
		// The token stays persisted; the next start retries.
		log.Warn("session not restored, continuing anonymous: %v", err)
	}

	syncLog := sqlite.NewSyncRepository(database.DB)
	pool := worker.NewPool(cfg.SyncWorkerCount, cfg.SyncQueueSize)
	pool.Start(context.WithoutCancel(ctx))
	queue := jobs.NewWorkerQueue(pool, gw.Users, syncLog)

	log.Debug("components wired: api=%s, session=%s", client.BaseURL(), store.State())
	return &App{
		Config:   cfg,
		DB:       database,
		Session:  store,
		Client:   client,
		Gateways: gw,
		Pool:     pool,
		Queue:    queue,
		SyncLog:  syncLog,
		Portal:   services.NewPortalService(gw, store, queue),
		Sessions: services.NewSessionService(gw.Auth, store),
	}, nil
}

// APIServer returns the BFF handler set over this App.
func (a *App) APIServer() *api.Server {
	return &api.Server{
		Portal:   a.Portal,
		Sessions: a.Sessions,
		Session:  a.Session,
		SyncLog:  a.SyncLog,
		DB:       a.DB,
	}
}

// Serve runs the BFF on addr until ctx is cancelled, then shuts down gracefully.
func (a *App) Serve(ctx context.Context, addr string) error {
	log := logger.FromContext(ctx)

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      a.APIServer().Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening on %s", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
		return err
	}
	return nil
}

// Close drains the sync pool, drops the in-memory session and closes the database.
func (a *App) Close() {
	log := logger.Default().WithPrefix("bootstrap")
	log.Debug("stopping sync pool")
	a.Pool.Stop()
	a.Session.Close()
	log.Debug("closing database connection")
	if err := a.DB.Close(); err != nil {
		log.Warn("failed to close database: %v", err)
	}
}
