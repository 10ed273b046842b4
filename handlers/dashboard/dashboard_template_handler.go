package dashboard

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"dugun.link/middlewares"
	"dugun.link/pkg/queryparams"
	"dugun.link/services"
)

// DashboardTemplateHandler panel şablon yönetimi uçları.
type DashboardTemplateHandler struct {
	templateService services.ITemplateService
	rsvpService     services.IRSVPService
}

// NewDashboardTemplateHandler yeni bir handler örneği oluşturur.
func NewDashboardTemplateHandler() *DashboardTemplateHandler {
	return &DashboardTemplateHandler{
		templateService: services.NewTemplateService(),
		rsvpService:     services.NewRSVPService(),
	}
}

// NewDashboardTemplateHandlerWith bağımlılık enjeksiyonu ile oluşturur (testler).
func NewDashboardTemplateHandlerWith(ts services.ITemplateService, rs services.IRSVPService) *DashboardTemplateHandler {
	return &DashboardTemplateHandler{templateService: ts, rsvpService: rs}
}

// List GET /dashboard/templates
func (h *DashboardTemplateHandler) List(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		return badRequest(c, "sorgu parametreleri çözümlenemedi")
	}
	params.Validate()

	result, err := h.templateService.GetTemplatesPaginated(c.UserContext(), params)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(fiber.Map{"success": true, "data": result.Data, "meta": result.Meta})
}

// Get GET /dashboard/templates/:id
func (h *DashboardTemplateHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "geçersiz ID")
	}
	template, err := h.templateService.GetTemplateByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, services.ErrTemplateNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c)
	}
	return c.JSON(fiber.Map{"success": true, "data": template})
}

// Create POST /dashboard/templates
func (h *DashboardTemplateHandler) Create(c *fiber.Ctx) error {
	var input services.CreateTemplateInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "istek gövdesi çözümlenemedi")
	}

	template, err := h.templateService.CreateTemplate(c.UserContext(), middlewares.UserIDFromContext(c), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTemplateInvalidInput),
			errors.Is(err, services.ErrTemplateInvalidSlug),
			errors.Is(err, services.ErrTemplateUnknownType):
			return badRequest(c, err.Error())
		case errors.Is(err, services.ErrTemplateSlugTaken):
			return conflict(c, err.Error())
		default:
			return internalError(c)
		}
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": template})
}

// Update PATCH /dashboard/templates/:id
func (h *DashboardTemplateHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "geçersiz ID")
	}
	var input services.UpdateTemplateInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "istek gövdesi çözümlenemedi")
	}

	if err := h.templateService.UpdateTemplate(c.UserContext(), middlewares.UserIDFromContext(c), id, input); err != nil {
		switch {
		case errors.Is(err, services.ErrTemplateNotFound):
			return notFound(c, err.Error())
		case errors.Is(err, services.ErrTemplateInvalidInput),
			errors.Is(err, services.ErrTemplateInvalidSlug),
			errors.Is(err, services.ErrTemplateUnknownType):
			return badRequest(c, err.Error())
		case errors.Is(err, services.ErrTemplateSlugTaken):
			return conflict(c, err.Error())
		default:
			return internalError(c)
		}
	}
	return c.JSON(fiber.Map{"success": true})
}

// Delete DELETE /dashboard/templates/:id
func (h *DashboardTemplateHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "geçersiz ID")
	}
	if err := h.templateService.DeleteTemplate(c.UserContext(), middlewares.UserIDFromContext(c), id); err != nil {
		if errors.Is(err, services.ErrTemplateNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c)
	}
	return c.JSON(fiber.Map{"success": true})
}

// Clone POST /dashboard/templates/:id/clone
func (h *DashboardTemplateHandler) Clone(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "geçersiz ID")
	}
	var body struct {
		Slug string `json:"slug"`
	}
	if err := c.BodyParser(&body); err != nil && len(c.Body()) > 0 {
		return badRequest(c, "istek gövdesi çözümlenemedi")
	}

	clone, err := h.templateService.CloneTemplate(c.UserContext(), middlewares.UserIDFromContext(c), id, body.Slug)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTemplateNotFound):
			return notFound(c, err.Error())
		case errors.Is(err, services.ErrTemplateInvalidSlug), errors.Is(err, services.ErrTemplateInvalidInput):
			return badRequest(c, err.Error())
		case errors.Is(err, services.ErrTemplateSlugTaken):
			return conflict(c, err.Error())
		default:
			return internalError(c)
		}
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": clone})
}

// ListRSVPs GET /dashboard/templates/:id/rsvps
func (h *DashboardTemplateHandler) ListRSVPs(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "geçersiz ID")
	}
	if _, err := h.templateService.GetTemplateByID(c.UserContext(), id); err != nil {
		if errors.Is(err, services.ErrTemplateNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c)
	}

	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		return badRequest(c, "sorgu parametreleri çözümlenemedi")
	}
	params.Validate()

	result, err := h.rsvpService.GetRSVPsForTemplate(c.UserContext(), id, params)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(fiber.Map{"success": true, "data": result.Data, "meta": result.Meta})
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("geçersiz ID")
	}
	return uint(id), nil
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": message})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": message})
}

func conflict(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusConflict).JSON(fiber.Map{"success": false, "error": message})
}

func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "beklenmeyen bir hata oluştu"})
}
