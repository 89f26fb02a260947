package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/handygo/tenant-client/internal/backend"
	"github.com/handygo/tenant-client/internal/config"
	"github.com/handygo/tenant-client/internal/database"
	"github.com/handygo/tenant-client/internal/logging"
	"github.com/handygo/tenant-client/internal/sandbox"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sandbox",
		Short: "Local stand-in for the HandyGo backend",
	}
	rootCmd.AddCommand(serveCmd(), seedCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Migrate, seed and serve the API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if port, _ := cmd.Flags().GetString("port"); port != "" {
				cfg.Port = port
			}

			// Sentry error tracking
			var hub *sentry.Hub
			if cfg.SentryDSN != "" {
				if err := sentry.Init(sentry.ClientOptions{
					Dsn:              cfg.SentryDSN,
					EnableTracing:    true,
					TracesSampleRate: 0.2,
					Environment:      cfg.AppEnv,
				}); err != nil {
					slog.Error("sentry init failed", "error", err)
				} else {
					hub = sentry.CurrentHub()
					defer sentry.Flush(2 * time.Second)
				}
			}

			// Structured logging (JSON to stdout)
			logging.Setup(cfg.LogLevel, os.Stdout, hub)

			db, err := openAndSeed(cfg)
			if err != nil {
				return err
			}

			app := sandbox.New(cfg, db,
				sentryfiber.New(sentryfiber.Options{
					Repanic:         true,
					WaitForDelivery: false,
				}),
				fiberlogger.New(fiberlogger.Config{
					Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
				}),
			)

			// Graceful shutdown
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			go func() {
				slog.Info("server starting", "port", cfg.Port)
				if err := app.Listen(":" + cfg.Port); err != nil {
					slog.Error("server failed to start", "error", err)
					os.Exit(1)
				}
			}()

			<-quit
			slog.Info("shutting down server...")

			if err := app.Shutdown(); err != nil {
				slog.Error("server shutdown error", "error", err)
			}

			// Close database connections
			if sqlDB, err := db.DB(); err == nil {
				if err := sqlDB.Close(); err != nil {
					slog.Error("database close error", "error", err)
				}
			}

			slog.Info("server stopped")
			return nil
		},
	}
	cmd.Flags().String("port", "", "Listen port (overrides PORT)")
	return cmd
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Migrate and seed the demo account without serving",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			logging.Setup(cfg.LogLevel, os.Stdout, nil)

			db, err := openAndSeed(cfg)
			if err != nil {
				return err
			}
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	}
}

func openAndSeed(cfg *config.Config) (*gorm.DB, error) {
	db, err := database.Open(cfg.SandboxDSN())
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	if err := backend.Seed(db, time.Now().UTC()); err != nil {
		return nil, fmt.Errorf("seed failed: %w", err)
	}
	return db, nil
}
