package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Shariq7739/GitExplore/internal/service"
)

// SearchHandler wires HTTP → repository search.
type SearchHandler struct {
	svc service.ExploreService
}

// NewSearchHandler returns a handler instance.
func NewSearchHandler(svc service.ExploreService) *SearchHandler {
	return &SearchHandler{svc: svc}
}

// Register mounts GET /search on the given router group.
func (h *SearchHandler) Register(r fiber.Router) {
	r.Get("/search", h.search)
}

// search handles GET /search?q=terminal&page=1&per_page=9
func (h *SearchHandler) search(c *fiber.Ctx) error {
	q := c.Query("q")
	page := c.QueryInt("page", service.DefaultPage)
	perPage := c.QueryInt("per_page", service.DefaultPerPage)

	result, err := h.svc.SearchRepositories(c.UserContext(), q, page, perPage)
	if err != nil {
		return toFiberError(err)
	}

	return c.JSON(result)
}
