package dashboard

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"dugun.link/middlewares"
	"dugun.link/services"
)

// DashboardTranslationHandler panel çeviri yönetimi uçları.
type DashboardTranslationHandler struct {
	translationService services.ITranslationService
}

// NewDashboardTranslationHandler yeni bir handler örneği oluşturur.
func NewDashboardTranslationHandler() *DashboardTranslationHandler {
	return &DashboardTranslationHandler{translationService: services.NewTranslationService()}
}

// NewDashboardTranslationHandlerWith bağımlılık enjeksiyonu ile oluşturur (testler).
func NewDashboardTranslationHandlerWith(trs services.ITranslationService) *DashboardTranslationHandler {
	return &DashboardTranslationHandler{translationService: trs}
}

// ListKeys GET /dashboard/translation-keys
func (h *DashboardTranslationHandler) ListKeys(c *fiber.Ctx) error {
	keys, err := h.translationService.ListKeys(c.UserContext())
	if err != nil {
		return internalError(c)
	}
	return c.JSON(fiber.Map{"success": true, "data": keys})
}

// CreateKey POST /dashboard/translation-keys
func (h *DashboardTranslationHandler) CreateKey(c *fiber.Ctx) error {
	var body struct {
		Key     string `json:"key"`
		Section string `json:"section"`
	}
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "istek gövdesi çözümlenemedi")
	}

	key, err := h.translationService.CreateKey(c.UserContext(), middlewares.UserIDFromContext(c), body.Key, body.Section)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTranslationInvalidInput):
			return badRequest(c, err.Error())
		case errors.Is(err, services.ErrTranslationKeyTaken):
			return conflict(c, err.Error())
		default:
			return internalError(c)
		}
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": key})
}

// UpdateKey PATCH /dashboard/translation-keys/:id
func (h *DashboardTranslationHandler) UpdateKey(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "geçersiz ID")
	}
	var body struct {
		Key     *string `json:"key"`
		Section *string `json:"section"`
	}
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "istek gövdesi çözümlenemedi")
	}

	if err := h.translationService.UpdateKey(c.UserContext(), middlewares.UserIDFromContext(c), id, body.Key, body.Section); err != nil {
		switch {
		case errors.Is(err, services.ErrTranslationKeyNotFound):
			return notFound(c, err.Error())
		case errors.Is(err, services.ErrTranslationInvalidInput):
			return badRequest(c, err.Error())
		case errors.Is(err, services.ErrTranslationKeyTaken):
			return conflict(c, err.Error())
		default:
			return internalError(c)
		}
	}
	return c.JSON(fiber.Map{"success": true})
}

// DeleteKey DELETE /dashboard/translation-keys/:id
func (h *DashboardTranslationHandler) DeleteKey(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "geçersiz ID")
	}
	if err := h.translationService.DeleteKey(c.UserContext(), middlewares.UserIDFromContext(c), id); err != nil {
		switch {
		case errors.Is(err, services.ErrTranslationKeyNotFound):
			return notFound(c, err.Error())
		case errors.Is(err, services.ErrTranslationInvalidInput):
			return badRequest(c, err.Error())
		default:
			return internalError(c)
		}
	}
	return c.JSON(fiber.Map{"success": true})
}

// UpsertValue PATCH /dashboard/translation-values
func (h *DashboardTranslationHandler) UpsertValue(c *fiber.Ctx) error {
	var body struct {
		KeyID    uint   `json:"keyId"`
		Language string `json:"language"`
		Value    string `json:"value"`
	}
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "istek gövdesi çözümlenemedi")
	}

	if err := h.translationService.UpsertValue(c.UserContext(), middlewares.UserIDFromContext(c), body.KeyID, body.Language, body.Value); err != nil {
		switch {
		case errors.Is(err, services.ErrTranslationKeyNotFound):
			return notFound(c, err.Error())
		case errors.Is(err, services.ErrTranslationInvalidInput), errors.Is(err, services.ErrTranslationLocaleUnknown):
			return badRequest(c, err.Error())
		default:
			return internalError(c)
		}
	}
	return c.JSON(fiber.Map{"success": true})
}
