package routes

import (
	"github.com/gofiber/fiber/v2"

	"dugun.link/handlers/site"
	"dugun.link/middlewares"
	"dugun.link/pkg/ratelimit"
)

// registerSiteRoutes public API uçlarını kaydeder.
func registerSiteRoutes(app *fiber.App) {
	healthHandler := site.NewHealthHandler()
	templateHandler := site.NewTemplateHandler()
	rsvpHandler := site.NewRSVPHandler()
	translationHandler := site.NewTranslationHandler()
	pricingHandler := site.NewPricingHandler()

	api := app.Group("/api")

	// Sağlık ucu izleme sistemleri tarafından sık çağrılır; sınırlanmaz.
	api.Get("/health", healthHandler.Check)

	general := middlewares.RateLimit(ratelimit.BucketGeneral)
	api.Get("/templates/:identifier/config", general, templateHandler.GetConfig)
	api.Get("/translations", general, translationHandler.GetAll)
	api.Get("/translations/:language", general, translationHandler.GetByLanguage)
	api.Get("/configurable-pricing-plans", general, pricingHandler.GetPlans)

	// LCV yazma ucu kendi dar penceresini kullanır.
	api.Post("/templates/:identifier/rsvp", middlewares.RateLimit(ratelimit.BucketRSVP), rsvpHandler.Submit)
}
