package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Shariq7739/GitExplore/internal/service"
)

// RegisterRoutes mounts the three gateway endpoints under /api/v1/github.
func RegisterRoutes(app *fiber.App, svc service.ExploreService) {
	gh := app.Group("/api/v1/github")
	NewRepoHandler(svc).Register(gh)
	NewSearchHandler(svc).Register(gh)
	NewTrendingHandler(svc).Register(gh)
}

// ErrorHandler renders every fiber error as the {"message": string} body the
// client contract expects.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{"message": err.Error()})
}

// toFiberError converts a service failure into the HTTP response it mandates.
func toFiberError(err error) error {
	if se, ok := err.(*service.StatusError); ok {
		return fiber.NewError(se.Code, se.Message)
	}
	return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
}
