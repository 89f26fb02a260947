package middleware

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/handygo/tenant-client/internal/backend"
	"github.com/handygo/tenant-client/internal/dto"
	"github.com/handygo/tenant-client/internal/tenant"
)

// TenantMiddleware resolves the caller's tenant record from the JWT subject or X-User-Id.
func TenantMiddleware(auth *backend.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := tenant.GetUserID(c)
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Unauthorized: missing user identity",
			})
		}

		t, err := auth.TenantForUser(userID)
		if err != nil {
			if errors.Is(err, backend.ErrTenantNotFound) {
				return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
					Error:   true,
					Message: "No tenant profile for this user",
				})
			}
			slog.Error("tenant lookup failed", "user_id", userID, "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Internal server error",
			})
		}

		tenant.SetTenant(c, t)
		return c.Next()
	}
}
