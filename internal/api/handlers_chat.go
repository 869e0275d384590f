package api

import (
	"strings"
	"time"

	"github.com/beatburn/server/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) AppendChatMessage(c *fiber.Ctx) error {
	var input services.NewChatMessageInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	message, err := handler.chatService.Append(input, time.Now())
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(message)
}

// AskChat stores the question, generates the coach reply and returns both
// messages in conversation order.
func (handler *Handler) AskChat(c *fiber.Ctx) error {
	var input askInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if input.UserID == 0 || strings.TrimSpace(input.Question) == "" {
		return apiError(c, fiber.StatusBadRequest, "userId and question are required")
	}

	messages, err := handler.chatService.Ask(input.UserID, input.Question, time.Now())
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(messages)
}

func (handler *Handler) ChatHistory(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}

	messages, err := handler.chatService.History(userID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(messages)
}
