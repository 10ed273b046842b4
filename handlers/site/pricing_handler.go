package site

import (
	"github.com/gofiber/fiber/v2"

	"dugun.link/services"
)

// PricingHandler public fiyatlandırma ucu.
type PricingHandler struct {
	pricingService services.IPricingService
}

// NewPricingHandler yeni bir PricingHandler örneği oluşturur.
func NewPricingHandler() *PricingHandler {
	return &PricingHandler{pricingService: services.NewPricingService()}
}

// NewPricingHandlerWith bağımlılık enjeksiyonu ile oluşturur (testler).
func NewPricingHandlerWith(ps services.IPricingService) *PricingHandler {
	return &PricingHandler{pricingService: ps}
}

// GetPlans GET /api/configurable-pricing-plans
func (h *PricingHandler) GetPlans(c *fiber.Ctx) error {
	plans, err := h.pricingService.GetPublicPlans(c.UserContext())
	if err != nil {
		return internalError(c)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    plans,
	})
}
