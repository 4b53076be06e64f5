package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Logging reports each request with its status and latency.
func Logging() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Printf("%s %s -> %d (%s)",
			c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start).Round(time.Millisecond))
		return err
	}
}
