package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/handygo/tenant-client/internal/backend"
	"github.com/handygo/tenant-client/internal/dto"
	"github.com/handygo/tenant-client/internal/tenant"
)

type ReviewHandler struct {
	reviews *backend.ReviewService
}

func NewReviewHandler(reviews *backend.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

func (h *ReviewHandler) List(c *fiber.Ctx) error {
	resp, err := h.reviews.List(tenant.GetTenant(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(resp)
}

// ListForUser serves /reviews/tenant/:userId. Tenants may only read their own.
func (h *ReviewHandler) ListForUser(c *fiber.Ctx) error {
	t := tenant.GetTenant(c)
	if c.Params("userId") != t.UserID {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Forbidden",
		})
	}
	return h.List(c)
}

func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	var body dto.CreateReviewBody
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}

	resp, err := h.reviews.Create(tenant.GetTenant(c), &body)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}
