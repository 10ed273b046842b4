package site

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dugun.link/models"
	"dugun.link/pkg/queryparams"
	"dugun.link/services"
)

// stubTemplateService sabit bir şablon sözlüğü üzerinden çözümleme yapar.
type stubTemplateService struct {
	templates map[string]*models.Template
}

func (s *stubTemplateService) ResolveTemplate(_ context.Context, identifier string) (*models.Template, error) {
	if models.IsLegacyIdentifier(identifier) {
		return nil, services.ErrTemplateLegacyPath
	}
	if !models.IsValidSlug(identifier) {
		return nil, services.ErrTemplateInvalidIdentifier
	}
	if t, ok := s.templates[identifier]; ok && t.IsActive {
		return t, nil
	}
	return nil, services.ErrTemplateNotFound
}

func (s *stubTemplateService) GetTemplateByID(context.Context, uint) (*models.Template, error) {
	return nil, services.ErrTemplateNotFound
}

func (s *stubTemplateService) GetTemplatesPaginated(context.Context, queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	return &queryparams.PaginatedResult{}, nil
}

func (s *stubTemplateService) CreateTemplate(context.Context, uint, services.CreateTemplateInput) (*models.Template, error) {
	return nil, services.ErrTemplateCreationFailed
}

func (s *stubTemplateService) CloneTemplate(context.Context, uint, uint, string) (*models.Template, error) {
	return nil, services.ErrTemplateCloneFailed
}

func (s *stubTemplateService) UpdateTemplate(context.Context, uint, uint, services.UpdateTemplateInput) error {
	return services.ErrTemplateUpdateFailed
}

func (s *stubTemplateService) DeleteTemplate(context.Context, uint, uint) error {
	return services.ErrTemplateDeletionFailed
}

// stubRSVPService ilk gönderimi kabul eder, aynı e-postayı reddeder.
type stubRSVPService struct {
	mu   sync.Mutex
	seen map[string]bool
}

func (s *stubRSVPService) SubmitRSVP(_ context.Context, template *models.Template, input services.SubmitRSVPInput) (*models.RSVP, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, services.ErrRSVPEmailInvalid
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	key := fmt.Sprintf("%d:%s", template.ID, email)
	if s.seen[key] {
		return nil, services.ErrRSVPAlreadySubmitted
	}
	s.seen[key] = true
	return &models.RSVP{TemplateID: template.ID, Email: email}, nil
}

func (s *stubRSVPService) GetRSVPsForTemplate(context.Context, uint, queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	return &queryparams.PaginatedResult{}, nil
}

// stubTranslationService Lookup'ta sabit sözlük kullanır.
type stubTranslationService struct{}

func (stubTranslationService) Bundle(string) (map[string]any, error) { return map[string]any{}, nil }
func (stubTranslationService) AllBundles() map[string]map[string]any { return nil }
func (stubTranslationService) Refresh(context.Context) error         { return nil }
func (stubTranslationService) ListKeys(context.Context) ([]models.TranslationKey, error) {
	return nil, nil
}
func (stubTranslationService) CreateKey(context.Context, uint, string, string) (*models.TranslationKey, error) {
	return nil, nil
}
func (stubTranslationService) UpdateKey(context.Context, uint, uint, *string, *string) error {
	return nil
}
func (stubTranslationService) DeleteKey(context.Context, uint, uint) error { return nil }
func (stubTranslationService) UpsertValue(context.Context, uint, uint, string, string) error {
	return nil
}

func (stubTranslationService) StartLiveRefresh(context.Context, time.Duration) {}

func (stubTranslationService) Lookup(lang, key string, fallback ...string) string {
	dict := map[string]map[string]string{
		"tr": {"rsvp.alreadySubmitted": "Bu e-posta adresiyle daha önce yanıt gönderilmiş."},
		"en": {"rsvp.alreadySubmitted": "A response was already submitted with this email."},
	}
	if value, ok := dict[lang][key]; ok {
		return value
	}
	for _, fb := range fallback {
		return fb
	}
	return key
}

func newSiteTestApp(t *testing.T) *fiber.App {
	t.Helper()
	template := &models.Template{
		Slug:     "ayse-mehmet",
		TypeKey:  models.TemplateTypeElegant,
		IsActive: true,
	}
	template.ID = 1

	templateService := &stubTemplateService{templates: map[string]*models.Template{"ayse-mehmet": template}}
	rsvpService := &stubRSVPService{seen: map[string]bool{}}
	rsvpHandler := NewRSVPHandlerWith(templateService, rsvpService, stubTranslationService{})
	templateHandler := NewTemplateHandlerWith(templateService, services.NewConfigService(), stubTranslationService{})

	app := fiber.New()
	app.Get("/api/templates/:identifier/config", templateHandler.GetConfig)
	app.Post("/api/templates/:identifier/rsvp", rsvpHandler.Submit)
	return app
}

func postRSVP(t *testing.T, app *fiber.App, identifier, body, lang string) (int, map[string]any) {
	t.Helper()
	target := "/api/templates/" + identifier + "/rsvp"
	if lang != "" {
		target += "?lang=" + lang
	}
	req := httptest.NewRequest("POST", target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return resp.StatusCode, payload
}

func TestRSVPEndpoint_SubmitThenDuplicateThenNewEmail(t *testing.T) {
	app := newSiteTestApp(t)

	// İlk gönderim kabul edilir.
	status, _ := postRSVP(t, app, "ayse-mehmet", `{"firstName":"Ali","lastName":"Veli","email":"ali@example.com","attendance":"attending","guestCount":1}`, "")
	assert.Equal(t, fiber.StatusCreated, status)

	// Aynı e-posta ile ikinci gönderim yerelleştirilmiş mesajla reddedilir.
	status, payload := postRSVP(t, app, "ayse-mehmet", `{"firstName":"Ali","lastName":"Veli","email":"ali@example.com","attendance":"attending","guestCount":1}`, "en")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "A response was already submitted with this email.", payload["message"])

	// Farklı e-posta ile gönderim yine kabul edilir.
	status, _ = postRSVP(t, app, "ayse-mehmet", `{"firstName":"Ayla","lastName":"Su","email":"ayla@example.com","attendance":"not_attending","guestCount":1}`, "")
	assert.Equal(t, fiber.StatusCreated, status)
}

func TestRSVPEndpoint_LocalizedDuplicateMessageDefaultsToTurkish(t *testing.T) {
	app := newSiteTestApp(t)

	status, _ := postRSVP(t, app, "ayse-mehmet", `{"firstName":"Ali","lastName":"Veli","email":"ali@example.com","attendance":"attending","guestCount":1}`, "")
	require.Equal(t, fiber.StatusCreated, status)

	status, payload := postRSVP(t, app, "ayse-mehmet", `{"firstName":"Ali","lastName":"Veli","email":"ali@example.com","attendance":"attending","guestCount":1}`, "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Bu e-posta adresiyle daha önce yanıt gönderilmiş.", payload["message"])
}

func TestRSVPEndpoint_UnknownTemplate(t *testing.T) {
	app := newSiteTestApp(t)

	status, _ := postRSVP(t, app, "hic-olmayan", `{"firstName":"Ali","lastName":"Veli","email":"ali@example.com","attendance":"attending","guestCount":1}`, "")
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestConfigEndpoint_LegacyIdentifierIs404(t *testing.T) {
	app := newSiteTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/templates/t-eski-adres/config", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode, "eski adres hiç olmamış gibi görünmeli")
}

func TestConfigEndpoint_ComposedConfigReturned(t *testing.T) {
	app := newSiteTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/templates/ayse-mehmet/config", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload struct {
		Success bool `json:"success"`
		Data    struct {
			Slug   string                `json:"slug"`
			Config models.ComposedConfig `json:"config"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.True(t, payload.Success)
	assert.Equal(t, "ayse-mehmet", payload.Data.Slug)
	assert.NotEmpty(t, payload.Data.Config.Theme.PrimaryColor)
	assert.NotNil(t, payload.Data.Config.Locations)
}
