package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/handygo/tenant-client/internal/backend"
	"github.com/handygo/tenant-client/internal/config"
	"github.com/handygo/tenant-client/internal/handlers"
	"github.com/handygo/tenant-client/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authService *backend.AuthService,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	requestHandler *handlers.RequestHandler,
	reviewHandler *handlers.ReviewHandler,
) {
	api := app.Group("/api/v1")

	// General API rate limiter: 120 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               120,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth-specific rate limit: 10 req/min per IP (stricter)
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/login", authHandler.Login)

	protected := []fiber.Handler{middleware.JWTProtected(cfg), middleware.TenantMiddleware(authService)}

	requests := api.Group("/requests", protected...)
	requests.Get("/", requestHandler.List)
	requests.Post("/", requestHandler.Create)
	requests.Get("/:id", requestHandler.Get)
	requests.Put("/:id/cancel", requestHandler.Cancel)

	reviews := api.Group("/reviews", protected...)
	reviews.Get("/", reviewHandler.List)
	reviews.Post("/", reviewHandler.Create)
	reviews.Get("/tenant/:userId", reviewHandler.ListForUser)
}
