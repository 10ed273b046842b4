package site

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"dugun.link/services"
)

// RSVPHandler public LCV gönderim ucu.
type RSVPHandler struct {
	templateService    services.ITemplateService
	rsvpService        services.IRSVPService
	translationService services.ITranslationService
}

// NewRSVPHandler yeni bir RSVPHandler örneği oluşturur.
func NewRSVPHandler() *RSVPHandler {
	return &RSVPHandler{
		templateService:    services.NewTemplateService(),
		rsvpService:        services.NewRSVPService(),
		translationService: services.NewTranslationService(),
	}
}

// NewRSVPHandlerWith bağımlılık enjeksiyonu ile oluşturur (testler).
func NewRSVPHandlerWith(ts services.ITemplateService, rs services.IRSVPService, trs services.ITranslationService) *RSVPHandler {
	return &RSVPHandler{templateService: ts, rsvpService: rs, translationService: trs}
}

// Submit POST /api/templates/:identifier/rsvp
func (h *RSVPHandler) Submit(c *fiber.Ctx) error {
	identifier := c.Params("identifier")
	lang := RequestLocale(c)

	template, err := h.templateService.ResolveTemplate(c.UserContext(), identifier)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTemplateInvalidIdentifier):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": err.Error(),
			})
		case errors.Is(err, services.ErrTemplateLegacyPath), errors.Is(err, services.ErrTemplateNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": services.ErrTemplateNotFound.Error(),
			})
		default:
			return internalError(c)
		}
	}

	var input services.SubmitRSVPInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": h.translationService.Lookup(lang, "rsvp.invalid", "istek gövdesi çözümlenemedi"),
		})
	}

	rsvp, err := h.rsvpService.SubmitRSVP(c.UserContext(), template, input)
	if err != nil {
		if errors.Is(err, services.ErrRSVPAlreadySubmitted) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": h.translationService.Lookup(lang, "rsvp.alreadySubmitted", err.Error()),
			})
		}
		var serviceErr services.RSVPServiceError
		if errors.As(err, &serviceErr) && !errors.Is(err, services.ErrRSVPCreationFailed) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": serviceErr.Error(),
			})
		}
		return internalError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    rsvp,
	})
}
