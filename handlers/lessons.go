package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// CompleteLesson marks a lesson completed. Completing it again is accepted
// and changes nothing.
func (h *Handler) CompleteLesson(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, ok := h.model.Lesson(id); !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Lesson not found"})
	}

	changed := h.model.CompleteLesson(c.UserContext(), id)
	lesson, _ := h.model.Lesson(id)
	return c.JSON(fiber.Map{
		"lesson":  lesson,
		"changed": changed,
		"profile": h.model.Profile(),
	})
}
