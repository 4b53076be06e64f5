package handler

import (
	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	tokenConfigured bool
}

func NewHealthHandler(tokenConfigured bool) *HealthHandler {
	return &HealthHandler{tokenConfigured: tokenConfigured}
}

func (h *HealthHandler) Register(r fiber.Router) {
	r.Get("/health", h.health)
}

func (h *HealthHandler) health(c *fiber.Ctx) error {
	github := "configured"
	if !h.tokenConfigured {
		github = "missing_token"
	}

	return c.JSON(fiber.Map{
		"status": "ok",
		"github": github,
	})
}
