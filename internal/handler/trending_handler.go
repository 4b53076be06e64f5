package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Shariq7739/GitExplore/internal/service"
)

// TrendingHandler wires HTTP → trending-via-search.
type TrendingHandler struct {
	svc service.ExploreService
}

// NewTrendingHandler returns a handler instance.
func NewTrendingHandler(svc service.ExploreService) *TrendingHandler {
	return &TrendingHandler{svc: svc}
}

// Register mounts GET /trending on the given router group.
func (h *TrendingHandler) Register(r fiber.Router) {
	r.Get("/trending", h.trending)
}

// trending handles GET /trending?page=1&per_page=9. Only the items array is
// surfaced; the upstream total_count is not meaningful for a floating window.
func (h *TrendingHandler) trending(c *fiber.Ctx) error {
	page := c.QueryInt("page", service.DefaultPage)
	perPage := c.QueryInt("per_page", service.DefaultPerPage)

	items, err := h.svc.GetTrending(c.UserContext(), page, perPage)
	if err != nil {
		return toFiberError(err)
	}

	return c.JSON(fiber.Map{"items": items})
}
