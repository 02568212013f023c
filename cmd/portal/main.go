package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/vytor/dsaportal/internal/bootstrap"
	"github.com/vytor/dsaportal/internal/cli"
	"github.com/vytor/dsaportal/internal/config"
	"github.com/vytor/dsaportal/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	interactive := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

	// Keep the terminal quiet unless LOG_LEVEL asks for more.
	level := logger.WARN
	if l, ok := logger.LookupLevel(os.Getenv("LOG_LEVEL")); ok {
		level = l
	}
	log := logger.New(
		logger.WithLevel(level),
		logger.WithColors(isatty.IsTerminal(os.Stderr.Fd())),
	)
	logger.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = logger.NewContext(ctx, log)

	app, err := bootstrap.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("starting portal: %w", err)
	}
	defer app.Close()

	root := cli.NewRootCmd(&cli.App{
		Portal:   app.Portal,
		Sessions: app.Sessions,
		Session:  app.Session,
		SyncLog:  app.SyncLog,
		Serve:    app.Serve,
		Addr:     cfg.Addr,
		Colors:   interactive,
	})
	return root.ExecuteContext(ctx)
}
