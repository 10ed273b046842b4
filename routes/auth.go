package routes

import (
	"github.com/gofiber/fiber/v2"

	"dugun.link/handlers/auth"
	"dugun.link/middlewares"
	"dugun.link/pkg/ratelimit"
)

// registerAuthRoutes kimlik doğrulama uçlarını kaydeder.
func registerAuthRoutes(app *fiber.App) {
	authHandler := auth.NewAuthHandler()

	app.Post("/auth/login", middlewares.RateLimit(ratelimit.BucketAuth), authHandler.Login)
}
