package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// EnsureBoardID requires every caller to identify the physical board (or
// client) it speaks for, via the X-Board-ID header or the boardId query
// parameter.
func EnsureBoardID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Locals("boardID") != nil {
			return c.Next()
		}

		boardID := c.Get("X-Board-ID")
		if boardID == "" {
			boardID = c.Query("boardId")
		}

		if boardID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Board ID is required. Set the X-Board-ID header or boardId query parameter.",
			})
		}

		c.Locals("boardID", boardID)
		return c.Next()
	}
}
