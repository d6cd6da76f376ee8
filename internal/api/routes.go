package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/voyago/voyago-backend/internal/api/handlers"
	"github.com/voyago/voyago-backend/internal/api/middleware"
	"github.com/voyago/voyago-backend/internal/services"
)

// SetupRoutes configures all API routes
func SetupRoutes(app *fiber.App, svc *services.Services, log *logrus.Logger) {
	api := app.Group("/api", middleware.RequestID(log))

	// Health check
	api.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Voyago Travel API is running",
			"status":  "healthy",
		})
	})

	// Storefront
	api.Post("/search", handlers.Search(svc))
	api.Get("/treasure-hunt", handlers.TreasureHunt(svc))
	api.Get("/whats-hot", handlers.WhatsHot(svc))

	// Trip planner chat
	api.Post("/chat", handlers.Chat(svc))
	api.Get("/chat/history/:user_id", handlers.ChatHistory(svc))
}
