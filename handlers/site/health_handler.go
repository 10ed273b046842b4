package site

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"dugun.link/configs"
)

// HealthHandler sağlık ucu.
type HealthHandler struct{}

// NewHealthHandler yeni bir HealthHandler örneği oluşturur.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check GET /api/health
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":      "ok",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": configs.AppEnv(),
		"version":     configs.AppVersion(),
	})
}
