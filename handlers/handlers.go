package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	appErrors "prospera-go-be/errors"
	"prospera-go-be/state"
)

// Handler forwards view intents to the state model.
type Handler struct {
	model *state.Model
}

func New(model *state.Model) *Handler {
	return &Handler{model: model}
}

// Register mounts every route on router.
func (h *Handler) Register(router fiber.Router) {
	router.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	router.Get("/state", h.GetState)
	router.Get("/summary", h.GetSummary)

	router.Post("/transactions", h.AddTransaction)
	router.Post("/transactions/form", h.RequestAddForm)
	router.Delete("/transactions/form", h.ClearAddForm)

	router.Post("/habits", h.AddHabit)
	router.Post("/habits/:id/toggle", h.ToggleHabit)

	router.Post("/lessons/:id/complete", h.CompleteLesson)

	router.Get("/advice", h.GetAdvice)
	router.Post("/advice", h.RequestAdvice)
}

func (h *Handler) GetState(c *fiber.Ctx) error {
	return c.JSON(h.model.Snapshot())
}

// writeError maps model errors to responses.
func writeError(c *fiber.Ctx, err error) error {
	if appErrors.IsValidationError(err) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	log.Printf("Error handling %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal error"})
}
