package main

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/voyago/voyago-backend/internal/api"
	"github.com/voyago/voyago-backend/internal/config"
	"github.com/voyago/voyago-backend/internal/database"
	"github.com/voyago/voyago-backend/internal/providers/factory"
	"github.com/voyago/voyago-backend/internal/repository/postgres"
	"github.com/voyago/voyago-backend/internal/services"
)

func main() {
	// .env is optional; real deployments set env vars directly
	_ = godotenv.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}

	// Connect to database
	db, err := database.NewConnection(cfg.Database)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}
	defer db.Close()

	// Run migrations
	if err := database.RunMigrations(cfg.Database); err != nil {
		log.WithError(err).Fatal("Failed to run migrations")
	}

	// Initialize LLM provider; nil means keyword-fallback mode
	provider, err := factory.NewFromConfig(cfg.LLM)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize LLM provider")
	}
	if provider == nil {
		log.Warn("No LLM API key configured; chat runs in keyword-fallback mode")
	}

	// Initialize Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Voyago Travel Backend",
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.Origins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	// Initialize repositories
	sessionRepo := postgres.NewSessionRepository(db.DB)
	messageRepo := postgres.NewMessageRepository(db.DB)
	packageRepo := postgres.NewPackageRepository(db.DB)

	// Initialize services
	svc := services.NewServices(cfg, provider, sessionRepo, messageRepo, packageRepo, log)

	// Setup routes
	api.SetupRoutes(app, svc, log)

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.WithField("addr", addr).Info("Voyago backend starting")
	if err := app.Listen(addr); err != nil {
		log.WithError(err).Fatal("Failed to start server")
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
