package site

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"dugun.link/services"
)

// TranslationHandler public çeviri sözlüğü uçları.
type TranslationHandler struct {
	translationService services.ITranslationService
}

// NewTranslationHandler yeni bir TranslationHandler örneği oluşturur.
func NewTranslationHandler() *TranslationHandler {
	return &TranslationHandler{translationService: services.NewTranslationService()}
}

// NewTranslationHandlerWith bağımlılık enjeksiyonu ile oluşturur (testler).
func NewTranslationHandlerWith(trs services.ITranslationService) *TranslationHandler {
	return &TranslationHandler{translationService: trs}
}

// GetAll GET /api/translations
func (h *TranslationHandler) GetAll(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    h.translationService.AllBundles(),
	})
}

// GetByLanguage GET /api/translations/:language
func (h *TranslationHandler) GetByLanguage(c *fiber.Ctx) error {
	lang := strings.ToLower(c.Params("language"))
	bundle, err := h.translationService.Bundle(lang)
	if err != nil {
		if errors.Is(err, services.ErrTranslationLocaleUnknown) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
			})
		}
		return internalError(c)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    bundle,
	})
}
