package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/handygo/tenant-client/internal/cli"
	"github.com/handygo/tenant-client/internal/config"
	"github.com/handygo/tenant-client/internal/logging"
)

func main() {
	cfg := config.Load()

	// Sentry error tracking
	var hub *sentry.Hub
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.SentryDSN,
			Environment: cfg.AppEnv,
		}); err != nil {
			fmt.Fprintln(os.Stderr, "sentry init failed:", err)
		} else {
			hub = sentry.CurrentHub()
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Logs go to stderr so command output stays clean on stdout.
	logging.Setup(cfg.LogLevel, os.Stderr, hub)

	app, closeStore, err := cli.Bootstrap(cfg)
	if err != nil {
		slog.Error("startup failed", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = cli.NewRootCmd(app).ExecuteContext(ctx)
	stop()

	if cerr := closeStore(); cerr != nil {
		slog.Error("session store close error", "error", cerr)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		sentry.Flush(2 * time.Second)
		os.Exit(1)
	}
}
