package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/ats-screener/internal/models"
	"alfredoptarigan/ats-screener/internal/services"
)

type ChatHandler struct {
	responder services.ChatResponder
}

func NewChatHandler(responder services.ChatResponder) *ChatHandler {
	return &ChatHandler{responder: responder}
}

// HandleChat handles POST /chat.
func (h *ChatHandler) HandleChat(c *fiber.Ctx) error {
	var req models.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	return c.JSON(models.ChatResponse{
		Reply: h.responder.Reply(req.Message),
	})
}
