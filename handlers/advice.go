package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// RequestAdvice asks for a new tip. It always answers 200: failures resolve
// to a fallback tip inside the advisor.
func (h *Handler) RequestAdvice(c *fiber.Ctx) error {
	if h.model.LoadingAdvice() {
		log.Println("Advice requested while another request is outstanding")
	}
	tip := h.model.RequestAdvice(c.UserContext())
	return c.JSON(fiber.Map{"advice": tip, "loadingAdvice": h.model.LoadingAdvice()})
}

func (h *Handler) GetAdvice(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"advice": h.model.Advice(), "loadingAdvice": h.model.LoadingAdvice()})
}
