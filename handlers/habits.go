package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"prospera-go-be/models"
)

// AddHabitRequest is the payload for creating a habit.
type AddHabitRequest struct {
	Title string `json:"title"`
}

// ToggleHabitRequest names the day to toggle. An empty date means today.
type ToggleHabitRequest struct {
	Date string `json:"date"`
}

func (h *Handler) AddHabit(c *fiber.Ctx) error {
	var req AddHabitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	habit, err := h.model.AddHabit(c.UserContext(), req.Title)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(habit)
}

// ToggleHabit flips a day in the habit's completed set.
func (h *Handler) ToggleHabit(c *fiber.Ctx) error {
	id := c.Params("id")
	var req ToggleHabitRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}
	}
	if req.Date == "" {
		req.Date = time.Now().UTC().Format(models.DateLayout)
	}

	changed, err := h.model.ToggleHabit(c.UserContext(), id, req.Date)
	if err != nil {
		return writeError(c, err)
	}
	if !changed {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Habit not found"})
	}

	habit, _ := h.model.Habit(id)
	return c.JSON(fiber.Map{
		"habit":     habit,
		"completed": habit.CompletedOn(req.Date),
		"profile":   h.model.Profile(),
	})
}
