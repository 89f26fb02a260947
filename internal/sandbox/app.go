// Package sandbox assembles the fiber application that stands in for the HandyGo backend.
package sandbox

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"

	"github.com/handygo/tenant-client/internal/backend"
	"github.com/handygo/tenant-client/internal/config"
	"github.com/handygo/tenant-client/internal/dto"
	"github.com/handygo/tenant-client/internal/handlers"
	"github.com/handygo/tenant-client/internal/middleware"
	"github.com/handygo/tenant-client/internal/routes"
)

// New builds the app over an already migrated database. extra middleware runs
// before the built-in stack, which is where the caller plugs Sentry and access logs.
func New(cfg *config.Config, db *gorm.DB, extra ...fiber.Handler) *fiber.App {
	filter := backend.NewContentFilter()
	authService := backend.NewAuthService(db, cfg)
	requestService := backend.NewRequestService(db, filter)
	reviewService := backend.NewReviewService(db, requestService, filter)

	app := fiber.New(fiber.Config{
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: errorHandler,
	})

	for _, h := range extra {
		app.Use(h)
	}
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Header: "X-Request-Id"}))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		return c.Next()
	})

	routes.Setup(app, cfg, authService,
		handlers.NewAuthHandler(authService),
		handlers.NewHealthHandler(db),
		handlers.NewRequestHandler(requestService),
		handlers.NewReviewHandler(reviewService),
	)
	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(dto.ErrorResponse{Error: true, Message: message})
}
