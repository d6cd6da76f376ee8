package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/voyago/voyago-backend/internal/services"
)

// Search handles POST /api/search: storefront package search
func Search(svc *services.Services) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req struct {
			Type        string `json:"type"`
			Destination string `json:"destination"`
		}

		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
			})
		}

		if req.Type == "" {
			req.Type = "packages"
		}

		resp, err := svc.Catalog.Search(c.Context(), req.Type, req.Destination)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Search failed",
			})
		}

		return c.JSON(resp)
	}
}

// TreasureHunt handles GET /api/treasure-hunt
func TreasureHunt(svc *services.Services) fiber.Handler {
	return func(c *fiber.Ctx) error {
		deals, err := svc.Catalog.TreasureHunt(c.Context())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to load treasure hunt deals",
			})
		}

		return c.JSON(deals)
	}
}

// WhatsHot handles GET /api/whats-hot
func WhatsHot(svc *services.Services) fiber.Handler {
	return func(c *fiber.Ctx) error {
		deals, err := svc.Catalog.WhatsHot(c.Context())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to load what's hot deals",
			})
		}

		return c.JSON(deals)
	}
}
