package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/handygo/tenant-client/internal/apperr"
	"github.com/handygo/tenant-client/internal/dto"
)

// fail writes err as dto.ErrorResponse. Only apperr messages reach the caller;
// anything else is logged and reported as a 500.
func fail(c *fiber.Ctx, err error) error {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return c.Status(appErr.Status).JSON(dto.ErrorResponse{
			Error: true, Message: appErr.Message,
		})
	}
	slog.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: "Internal server error",
	})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: "Invalid request body",
	})
}
