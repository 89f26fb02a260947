package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"

	"github.com/handygo/tenant-client/internal/config"
	"github.com/handygo/tenant-client/internal/dto"
	"github.com/handygo/tenant-client/internal/tenant"
)

// JWTProtected verifies the bearer token. With cfg.TrustUserIDHeader set, callers
// without a valid token may identify themselves with X-User-Id, which older
// clients send alongside a placeholder token.
func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if userID := c.Get(tenant.UserIDHeader); cfg.TrustUserIDHeader && userID != "" {
				c.Locals("user", nil)
				tenant.SetHeaderUserID(c, userID)
				return c.Next()
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Unauthorized: invalid or expired token",
			})
		},
	})
}
