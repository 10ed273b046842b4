package site

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"dugun.link/services"
)

// TemplateHandler public davetiye konfigürasyon ucu.
type TemplateHandler struct {
	templateService    services.ITemplateService
	configService      services.IConfigService
	translationService services.ITranslationService
}

// NewTemplateHandler yeni bir TemplateHandler örneği oluşturur.
func NewTemplateHandler() *TemplateHandler {
	return &TemplateHandler{
		templateService:    services.NewTemplateService(),
		configService:      services.NewConfigService(),
		translationService: services.NewTranslationService(),
	}
}

// NewTemplateHandlerWith bağımlılık enjeksiyonu ile oluşturur (testler).
func NewTemplateHandlerWith(ts services.ITemplateService, cs services.IConfigService, trs services.ITranslationService) *TemplateHandler {
	return &TemplateHandler{templateService: ts, configService: cs, translationService: trs}
}

// GetConfig GET /api/templates/:identifier/config
func (h *TemplateHandler) GetConfig(c *fiber.Ctx) error {
	identifier := c.Params("identifier")
	lang := RequestLocale(c)

	template, err := h.templateService.ResolveTemplate(c.UserContext(), identifier)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTemplateInvalidIdentifier):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
			})
		case errors.Is(err, services.ErrTemplateLegacyPath), errors.Is(err, services.ErrTemplateNotFound):
			// Eski adresler de, hiç olmamış adresler de aynı yanıtı alır.
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   services.ErrTemplateNotFound.Error(),
			})
		default:
			return internalError(c)
		}
	}

	if template.Maintenance {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"success": false,
			"error":   h.translationService.Lookup(lang, "maintenance.message", "davetiye şu anda bakımda"),
		})
	}

	composed, err := h.configService.ComposeConfig(template)
	if err != nil {
		// Tür kaydı bozuksa bunu istemciye sızdırmadan genel hata dönülür.
		return internalError(c)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"id":     template.PublicID,
			"slug":   template.Slug,
			"type":   template.TypeKey,
			"config": composed,
		},
	})
}

func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"error":   "beklenmeyen bir hata oluştu",
	})
}
