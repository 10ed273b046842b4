package services

import (
	"encoding/json"

	"go.uber.org/zap"

	"dugun.link/configs/configslog"
	"dugun.link/models"
	"dugun.link/pkg/deepmerge"
)

// ConfigServiceError özel servis hataları
type ConfigServiceError string

func (e ConfigServiceError) Error() string { return string(e) }

const (
	ErrUnsupportedTemplateType ConfigServiceError = "desteklenmeyen şablon türü"
	ErrConfigComposeFailed     ConfigServiceError = "konfigürasyon birleştirilemedi"
)

// IConfigService bir tenant'ın etkin konfigürasyonunu üretir.
type IConfigService interface {
	// ComposeConfig tür varsayılanları üzerine tenant'ın kayıtlı
	// konfigürasyonunu bölüm bölüm birleştirir. Çıktıda her bölüm doludur;
	// aynı kayıt için art arda çağrılar bayt bayt aynı sonucu verir.
	ComposeConfig(template *models.Template) (*models.ComposedConfig, error)
}

// ConfigService IConfigService arayüzünü uygular. Durumsuzdur.
type ConfigService struct{}

// NewConfigService yeni bir ConfigService örneği oluşturur.
func NewConfigService() IConfigService {
	return &ConfigService{}
}

// ComposeConfig tenant override'ını tür varsayılanlarıyla birleştirir.
func (s *ConfigService) ComposeConfig(template *models.Template) (*models.ComposedConfig, error) {
	defaults, ok := models.DefaultConfigForType(template.TypeKey)
	if !ok {
		// Bu sonuç cache'lenmemelidir; tür kaydı düzeltilince aynı istek
		// başarılı olmalı.
		return nil, ErrUnsupportedTemplateType
	}

	defaultMap, err := toMap(defaults)
	if err != nil {
		configslog.Log.Error("Varsayılan konfigürasyon map'e çevrilemedi",
			zap.String("type_key", template.TypeKey), zap.Error(err))
		return nil, ErrConfigComposeFailed
	}

	overrideMap := map[string]any{}
	if len(template.Config) > 0 {
		if err := json.Unmarshal(template.Config, &overrideMap); err != nil {
			// Bozuk blob isteği düşürmez; varsayılanlarla devam edilir.
			configslog.Log.Warn("Tenant konfigürasyonu çözümlenemedi, varsayılanlar kullanılacak",
				zap.Uint("template_id", template.ID), zap.Error(err))
			overrideMap = map[string]any{}
		}
	}

	// Kör bir spread yerine bölüm bazlı birleştirme: override yalnızca bir
	// bölümün alt kümesini veriyorsa bölümün kalan varsayılan alanları
	// korunur. Şemada olmayan üst seviye anahtarlar yok sayılır.
	merged := make(map[string]any, len(models.ConfigSectionKeys))
	for _, section := range models.ConfigSectionKeys {
		base, _ := defaultMap[section].(map[string]any)
		if override, ok := overrideMap[section].(map[string]any); ok {
			merged[section] = deepmerge.Maps(base, override)
			continue
		}
		if overrideValue, ok := overrideMap[section]; ok {
			// Map olmayan bölümler (locations, timeline dizileri) bütün
			// olarak değiştirilir.
			merged[section] = overrideValue
			continue
		}
		if base != nil {
			merged[section] = base
			continue
		}
		merged[section] = defaultMap[section]
	}

	var composed models.ComposedConfig
	raw, err := json.Marshal(merged)
	if err == nil {
		err = json.Unmarshal(raw, &composed)
	}
	if err != nil {
		configslog.Log.Error("Birleşik konfigürasyon tipe dönüştürülemedi",
			zap.Uint("template_id", template.ID), zap.Error(err))
		return nil, ErrConfigComposeFailed
	}

	normalize(&composed, defaults)
	return &composed, nil
}

// toMap struct'ı JSON üzerinden map'e çevirir.
func toMap(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// normalize sözleşmeyi tamamlar: diziler nil olamaz, boş tema renkleri
// tür varsayılanına, o da boşsa nötr palete düşer.
func normalize(cfg *models.ComposedConfig, defaults models.ComposedConfig) {
	if cfg.Locations == nil {
		cfg.Locations = []models.Venue{}
	}
	if cfg.Timeline == nil {
		cfg.Timeline = []models.TimelineEvent{}
	}
	if cfg.Photos.Images == nil {
		cfg.Photos.Images = []string{}
	}

	fillColor(&cfg.Theme.PrimaryColor, defaults.Theme.PrimaryColor, models.NeutralTheme.PrimaryColor)
	fillColor(&cfg.Theme.SecondaryColor, defaults.Theme.SecondaryColor, models.NeutralTheme.SecondaryColor)
	fillColor(&cfg.Theme.AccentColor, defaults.Theme.AccentColor, models.NeutralTheme.AccentColor)
	fillColor(&cfg.Theme.BackgroundColor, defaults.Theme.BackgroundColor, models.NeutralTheme.BackgroundColor)
	fillColor(&cfg.Theme.FontHeading, defaults.Theme.FontHeading, models.NeutralTheme.FontHeading)
	fillColor(&cfg.Theme.FontBody, defaults.Theme.FontBody, models.NeutralTheme.FontBody)
}

func fillColor(target *string, typeDefault, neutral string) {
	if *target != "" {
		return
	}
	if typeDefault != "" {
		*target = typeDefault
		return
	}
	*target = neutral
}

var _ IConfigService = (*ConfigService)(nil)
