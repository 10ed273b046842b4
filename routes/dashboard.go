package routes

import (
	"github.com/gofiber/fiber/v2"

	"dugun.link/handlers/dashboard"
	"dugun.link/middlewares"
	"dugun.link/pkg/ratelimit"
)

// registerDashboardRoutes yönetim paneli uçlarını kaydeder. Tümü JWT ve
// sistem yöneticisi yetkisi ister.
func registerDashboardRoutes(app *fiber.App) {
	templateHandler := dashboard.NewDashboardTemplateHandler()
	translationHandler := dashboard.NewDashboardTranslationHandler()
	pricingHandler := dashboard.NewDashboardPricingHandler()

	group := app.Group("/dashboard",
		middlewares.RateLimit(ratelimit.BucketAdmin),
		middlewares.AuthMiddleware,
		middlewares.RequireSystem(),
	)

	group.Get("/templates", templateHandler.List)
	group.Post("/templates", templateHandler.Create)
	group.Get("/templates/:id", templateHandler.Get)
	group.Patch("/templates/:id", templateHandler.Update)
	group.Delete("/templates/:id", templateHandler.Delete)
	group.Post("/templates/:id/clone", templateHandler.Clone)
	group.Get("/templates/:id/rsvps", templateHandler.ListRSVPs)

	group.Get("/translation-keys", translationHandler.ListKeys)
	group.Post("/translation-keys", translationHandler.CreateKey)
	group.Patch("/translation-keys/:id", translationHandler.UpdateKey)
	group.Delete("/translation-keys/:id", translationHandler.DeleteKey)
	group.Patch("/translation-values", translationHandler.UpsertValue)

	group.Get("/pricing-features", pricingHandler.ListFeatures)
	group.Get("/configurable-pricing-plans", pricingHandler.List)
	group.Post("/configurable-pricing-plans", pricingHandler.Create)
	group.Get("/configurable-pricing-plans/:id", pricingHandler.Get)
	group.Patch("/configurable-pricing-plans/:id", pricingHandler.Update)
	group.Delete("/configurable-pricing-plans/:id", pricingHandler.Delete)
	group.Post("/configurable-pricing-plans/:id/reorder", pricingHandler.Reorder)
	group.Put("/configurable-pricing-plans/:id/features", pricingHandler.ReplaceFeatures)
}
