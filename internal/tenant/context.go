package tenant

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/handygo/tenant-client/internal/models"
)

// UserIDHeader identifies the caller when no valid bearer token is sent.
const UserIDHeader = "X-User-Id"

const headerUserKey = "header_user_id"

// SetHeaderUserID records an X-User-Id identity the auth middleware chose to accept.
func SetHeaderUserID(c *fiber.Ctx, userID string) {
	c.Locals(headerUserKey, userID)
}

// GetUserID returns the JWT subject when a token was verified, else an identity
// accepted through SetHeaderUserID. The raw header is never read here.
func GetUserID(c *fiber.Ctx) string {
	if token, ok := c.Locals("user").(*jwt.Token); ok && token.Valid {
		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if sub, ok := claims["sub"].(string); ok && sub != "" {
				return sub
			}
		}
	}
	id, _ := c.Locals(headerUserKey).(string)
	return id
}

func SetTenant(c *fiber.Ctx, t *models.Tenant) {
	c.Locals("tenant", t)
}

// GetTenant returns the tenant resolved by the tenant middleware, or nil.
func GetTenant(c *fiber.Ctx) *models.Tenant {
	t, _ := c.Locals("tenant").(*models.Tenant)
	return t
}
