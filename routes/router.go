package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupRoutes tüm rota gruplarını ve genel middleware'leri kurar.
func SetupRoutes(app *fiber.App) {
	app.Use(recover.New())
	app.Use(logger.New())

	registerSiteRoutes(app)
	registerAuthRoutes(app)
	registerDashboardRoutes(app)

	// Eşleşmeyen tüm istekler JSON 404 alır.
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "kaynak bulunamadı",
		})
	})
}
