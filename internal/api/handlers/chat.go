package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/voyago/voyago-backend/internal/services"
)

// Chat handles POST /api/chat: one conversational turn with the trip
// planner. Model trouble degrades to fallback text inside the service;
// only persistence failures produce an error status here.
func Chat(svc *services.Services) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req struct {
			UserID    *int64 `json:"user_id"`
			SessionID *int64 `json:"session_id"`
			Message   string `json:"message"`
		}

		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
			})
		}

		if req.Message == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Message is required",
			})
		}

		resp, err := svc.Planner.Chat(c.Context(), req.UserID, req.SessionID, req.Message)
		if err != nil {
			if errors.Is(err, services.ErrSessionNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error": "Session not found",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Chat processing failed",
			})
		}

		return c.JSON(resp)
	}
}

// ChatHistory handles GET /api/chat/history/:user_id: the user's active
// session and its messages in timestamp order.
func ChatHistory(svc *services.Services) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := strconv.ParseInt(c.Params("user_id"), 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid user id",
			})
		}

		resp, err := svc.Planner.History(c.Context(), &userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to load chat history",
			})
		}

		return c.JSON(resp)
	}
}
