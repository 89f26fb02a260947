package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/handygo/tenant-client/internal/backend"
	"github.com/handygo/tenant-client/internal/dto"
	"github.com/handygo/tenant-client/internal/tenant"
)

type RequestHandler struct {
	requests *backend.RequestService
}

func NewRequestHandler(requests *backend.RequestService) *RequestHandler {
	return &RequestHandler{requests: requests}
}

func (h *RequestHandler) List(c *fiber.Ctx) error {
	resp, err := h.requests.List(tenant.GetTenant(c), c.Query("status"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(resp)
}

func (h *RequestHandler) Get(c *fiber.Ctx) error {
	resp, err := h.requests.Get(tenant.GetTenant(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(resp)
}

func (h *RequestHandler) Create(c *fiber.Ctx) error {
	var body dto.CreateRequestBody
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}

	resp, err := h.requests.Create(tenant.GetTenant(c), &body)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *RequestHandler) Cancel(c *fiber.Ctx) error {
	resp, err := h.requests.Cancel(tenant.GetTenant(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(resp)
}
