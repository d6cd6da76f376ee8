package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const requestIDKey = "request_id"

// RequestID tags every request with a correlation ID, echoes it in the
// X-Request-ID response header, and logs request completion with it.
func RequestID(log *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}

		c.Locals(requestIDKey, id)
		c.Set("X-Request-ID", id)

		err := c.Next()

		log.WithFields(logrus.Fields{
			"request_id": id,
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     c.Response().StatusCode(),
		}).Info("request completed")

		return err
	}
}

// GetRequestID returns the correlation ID for the current request
func GetRequestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(requestIDKey).(string); ok {
		return id
	}
	return ""
}
