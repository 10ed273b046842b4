package dashboard

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"dugun.link/middlewares"
	"dugun.link/services"
)

// DashboardPricingHandler panel fiyatlandırma yönetimi uçları.
type DashboardPricingHandler struct {
	pricingService services.IPricingService
}

// NewDashboardPricingHandler yeni bir handler örneği oluşturur.
func NewDashboardPricingHandler() *DashboardPricingHandler {
	return &DashboardPricingHandler{pricingService: services.NewPricingService()}
}

// NewDashboardPricingHandlerWith bağımlılık enjeksiyonu ile oluşturur (testler).
func NewDashboardPricingHandlerWith(ps services.IPricingService) *DashboardPricingHandler {
	return &DashboardPricingHandler{pricingService: ps}
}

// List GET /dashboard/configurable-pricing-plans
func (h *DashboardPricingHandler) List(c *fiber.Ctx) error {
	plans, err := h.pricingService.GetAllPlans(c.UserContext())
	if err != nil {
		return internalError(c)
	}
	return c.JSON(fiber.Map{"success": true, "data": plans})
}

// Get GET /dashboard/configurable-pricing-plans/:id
func (h *DashboardPricingHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "geçersiz ID")
	}
	plan, err := h.pricingService.GetPlanByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, services.ErrPlanNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c)
	}
	return c.JSON(fiber.Map{"success": true, "data": plan})
}

// Create POST /dashboard/configurable-pricing-plans
func (h *DashboardPricingHandler) Create(c *fiber.Ctx) error {
	var input services.CreatePlanInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "istek gövdesi çözümlenemedi")
	}

	plan, err := h.pricingService.CreatePlan(c.UserContext(), middlewares.UserIDFromContext(c), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPlanInvalidInput):
			return badRequest(c, err.Error())
		case errors.Is(err, services.ErrPlanKeyTaken):
			return conflict(c, err.Error())
		default:
			return internalError(c)
		}
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": plan})
}

// Update PATCH /dashboard/configurable-pricing-plans/:id
func (h *DashboardPricingHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "geçersiz ID")
	}
	var input services.UpdatePlanInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "istek gövdesi çözümlenemedi")
	}

	if err := h.pricingService.UpdatePlan(c.UserContext(), middlewares.UserIDFromContext(c), id, input); err != nil {
		switch {
		case errors.Is(err, services.ErrPlanNotFound):
			return notFound(c, err.Error())
		case errors.Is(err, services.ErrPlanInvalidInput):
			return badRequest(c, err.Error())
		case errors.Is(err, services.ErrPlanKeyTaken):
			return conflict(c, err.Error())
		default:
			return internalError(c)
		}
	}
	return c.JSON(fiber.Map{"success": true})
}

// Delete DELETE /dashboard/configurable-pricing-plans/:id
func (h *DashboardPricingHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "geçersiz ID")
	}
	if err := h.pricingService.DeletePlan(c.UserContext(), middlewares.UserIDFromContext(c), id); err != nil {
		if errors.Is(err, services.ErrPlanNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c)
	}
	return c.JSON(fiber.Map{"success": true})
}

// ListFeatures GET /dashboard/pricing-features
func (h *DashboardPricingHandler) ListFeatures(c *fiber.Ctx) error {
	features, err := h.pricingService.ListFeatures(c.UserContext())
	if err != nil {
		return internalError(c)
	}
	return c.JSON(fiber.Map{"success": true, "data": features})
}

// Reorder POST /dashboard/configurable-pricing-plans/:id/reorder
func (h *DashboardPricingHandler) Reorder(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "geçersiz ID")
	}
	var body struct {
		Direction string `json:"direction"`
	}
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "istek gövdesi çözümlenemedi")
	}

	if err := h.pricingService.ReorderPlan(c.UserContext(), middlewares.UserIDFromContext(c), id, body.Direction); err != nil {
		switch {
		case errors.Is(err, services.ErrPlanNotFound):
			return notFound(c, err.Error())
		case errors.Is(err, services.ErrPlanInvalidDirection), errors.Is(err, services.ErrPlanInvalidInput):
			return badRequest(c, err.Error())
		default:
			return internalError(c)
		}
	}
	return c.JSON(fiber.Map{"success": true})
}

// ReplaceFeatures PUT /dashboard/configurable-pricing-plans/:id/features
func (h *DashboardPricingHandler) ReplaceFeatures(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "geçersiz ID")
	}
	var body struct {
		Features []services.PlanFeatureInput `json:"features"`
	}
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "istek gövdesi çözümlenemedi")
	}

	if err := h.pricingService.ReplacePlanFeatures(c.UserContext(), middlewares.UserIDFromContext(c), id, body.Features); err != nil {
		switch {
		case errors.Is(err, services.ErrPlanNotFound):
			return notFound(c, err.Error())
		case errors.Is(err, services.ErrPlanInvalidInput), errors.Is(err, services.ErrPlanFeatureUnknownKey):
			return badRequest(c, err.Error())
		default:
			return internalError(c)
		}
	}
	return c.JSON(fiber.Map{"success": true})
}
