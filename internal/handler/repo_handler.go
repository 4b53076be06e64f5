package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Shariq7739/GitExplore/internal/service"
)

// RepoHandler wires HTTP → single-repository lookup.
type RepoHandler struct {
	svc service.ExploreService
}

// NewRepoHandler creates a new RepoHandler.
func NewRepoHandler(svc service.ExploreService) *RepoHandler {
	return &RepoHandler{svc: svc}
}

// Register mounts GET /repo on the supplied router group.
func (h *RepoHandler) Register(r fiber.Router) {
	r.Get("/repo", h.getRepo)
}

// getRepo handles GET /repo?owner=facebook&repo=react
func (h *RepoHandler) getRepo(c *fiber.Ctx) error {
	owner := c.Query("owner")
	repo := c.Query("repo")

	detail, err := h.svc.GetRepository(c.UserContext(), owner, repo)
	if err != nil {
		return toFiberError(err)
	}

	return c.JSON(detail)
}
