package handlers

import (
	"github.com/gofiber/fiber/v2"

	"prospera-go-be/models"
)

// AddFormRequest is the payload for presetting the add-transaction form.
type AddFormRequest struct {
	Type models.TransactionType `json:"type"`
}

// AddTransaction records a new income or expense.
func (h *Handler) AddTransaction(c *fiber.Ctx) error {
	var draft models.TransactionDraft
	if err := c.BodyParser(&draft); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	tx, err := h.model.AddTransaction(c.UserContext(), draft)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"transaction": tx,
		"profile":     h.model.Profile(),
	})
}

func (h *Handler) RequestAddForm(c *fiber.Ctx) error {
	var req AddFormRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := h.model.RequestAddForm(req.Type); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"pendingForm": req})
}

func (h *Handler) ClearAddForm(c *fiber.Ctx) error {
	h.model.ClearAddForm()
	return c.SendStatus(fiber.StatusNoContent)
}
