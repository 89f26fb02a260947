package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/handygo/tenant-client/internal/backend"
	"github.com/handygo/tenant-client/internal/dto"
)

type AuthHandler struct {
	authService *backend.AuthService
}

func NewAuthHandler(authService *backend.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(resp)
}
