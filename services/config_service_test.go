package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dugun.link/models"
)

func elegantTemplate(config string) *models.Template {
	t := &models.Template{
		TypeKey:  models.TemplateTypeElegant,
		IsActive: true,
	}
	if config != "" {
		t.Config = json.RawMessage(config)
	}
	return t
}

func TestComposeConfig_EmptyOverrideYieldsDefaults(t *testing.T) {
	service := NewConfigService()

	composed, err := service.ComposeConfig(elegantTemplate(""))
	require.NoError(t, err)

	defaults, _ := models.DefaultConfigForType(models.TemplateTypeElegant)
	assert.Equal(t, defaults.Couple, composed.Couple)
	assert.Equal(t, defaults.Theme, composed.Theme)
	assert.Len(t, composed.Timeline, len(defaults.Timeline))
}

func TestComposeConfig_PartialSectionKeepsSiblingDefaults(t *testing.T) {
	service := NewConfigService()
	template := elegantTemplate(`{"couple":{"brideName":"Ayşe"}}`)

	composed, err := service.ComposeConfig(template)
	require.NoError(t, err)

	assert.Equal(t, "Ayşe", composed.Couple.BrideName)
	assert.Equal(t, "Damat", composed.Couple.GroomName, "override'da olmayan kardeş alan korunmalı")
	assert.Equal(t, "Hikayemiz yakında burada.", composed.Couple.Story)
}

func TestComposeConfig_ArraysReplacedWholesale(t *testing.T) {
	service := NewConfigService()
	template := elegantTemplate(`{"timeline":[{"time":"12:00","title":"Tek Olay"}]}`)

	composed, err := service.ComposeConfig(template)
	require.NoError(t, err)

	require.Len(t, composed.Timeline, 1)
	assert.Equal(t, "Tek Olay", composed.Timeline[0].Title)
}

func TestComposeConfig_Deterministic(t *testing.T) {
	service := NewConfigService()
	template := elegantTemplate(`{"hero":{"title":"Özel Başlık"},"locations":[]}`)

	first, err := service.ComposeConfig(template)
	require.NoError(t, err)
	second, err := service.ComposeConfig(template)
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, firstJSON, secondJSON, "aynı kayıt için art arda çağrılar bayt bayt aynı olmalı")
}

func TestComposeConfig_UnknownTypeFails(t *testing.T) {
	service := NewConfigService()
	template := &models.Template{TypeKey: "uzay-cagi"}

	_, err := service.ComposeConfig(template)
	assert.ErrorIs(t, err, ErrUnsupportedTemplateType)
}

func TestComposeConfig_MalformedBlobFallsBackToDefaults(t *testing.T) {
	service := NewConfigService()
	template := elegantTemplate(`{bozuk json`)

	composed, err := service.ComposeConfig(template)
	require.NoError(t, err, "bozuk blob isteği düşürmemeli")

	defaults, _ := models.DefaultConfigForType(models.TemplateTypeElegant)
	assert.Equal(t, defaults.Couple, composed.Couple)
}

func TestComposeConfig_SlicesNeverNil(t *testing.T) {
	service := NewConfigService()
	template := elegantTemplate(`{"locations":null,"timeline":null,"photos":{"images":null}}`)

	composed, err := service.ComposeConfig(template)
	require.NoError(t, err)

	assert.NotNil(t, composed.Locations)
	assert.NotNil(t, composed.Timeline)
	assert.NotNil(t, composed.Photos.Images)
}

func TestComposeConfig_EmptyThemeColorsFilled(t *testing.T) {
	service := NewConfigService()
	template := elegantTemplate(`{"theme":{"primaryColor":"","accentColor":"#123456"}}`)

	composed, err := service.ComposeConfig(template)
	require.NoError(t, err)

	defaults, _ := models.DefaultConfigForType(models.TemplateTypeElegant)
	assert.Equal(t, defaults.Theme.PrimaryColor, composed.Theme.PrimaryColor, "boş renk tür varsayılanına düşmeli")
	assert.Equal(t, "#123456", composed.Theme.AccentColor, "dolu override korunmalı")
}

func TestComposeConfig_UnknownTopLevelKeysIgnored(t *testing.T) {
	service := NewConfigService()
	template := elegantTemplate(`{"bilinmeyenBolum":{"x":1},"hero":{"title":"Başlık"}}`)

	composed, err := service.ComposeConfig(template)
	require.NoError(t, err)

	raw, err := json.Marshal(composed)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "bilinmeyenBolum")
	assert.Equal(t, "Başlık", composed.Hero.Title)
}
