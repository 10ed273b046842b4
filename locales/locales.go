package locales

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed bundles/*.json
var bundleFS embed.FS

// DefaultLocale her anahtarın mutlaka çözümlenmesi beklenen varsayılan dil.
const DefaultLocale = "tr"

// Supported desteklenen diller.
var Supported = []string{"tr", "en", "de"}

// Bundle tek bir dilin iç içe çeviri sözlüğü.
type Bundle map[string]any

// IsSupported dilin desteklenip desteklenmediğini söyler.
func IsSupported(lang string) bool {
	for _, l := range Supported {
		if l == lang {
			return true
		}
	}
	return false
}

// Load gömülü statik bundle'ları okur. Uygulama başlarken bir kez çağrılır.
func Load() (map[string]Bundle, error) {
	bundles := make(map[string]Bundle, len(Supported))
	for _, lang := range Supported {
		raw, err := bundleFS.ReadFile("bundles/" + lang + ".json")
		if err != nil {
			return nil, fmt.Errorf("%s bundle okunamadı: %w", lang, err)
		}
		var b Bundle
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, fmt.Errorf("%s bundle çözümlenemedi: %w", lang, err)
		}
		bundles[lang] = b
	}
	return bundles, nil
}

// Lookup noktalı anahtar yolunu bundle içinde çözer. Değer ancak kırpılmış
// hali boş olmayan bir string ise bulunmuş sayılır; boşluk-karakterli
// değerler hiç yazılmamış kabul edilir.
func (b Bundle) Lookup(path string) (string, bool) {
	if b == nil || path == "" {
		return "", false
	}
	parts := strings.Split(path, ".")
	var current any = map[string]any(b)
	for _, part := range parts {
		node, ok := current.(map[string]any)
		if !ok {
			return "", false
		}
		current, ok = node[part]
		if !ok {
			return "", false
		}
	}
	value, ok := current.(string)
	if !ok || strings.TrimSpace(value) == "" {
		return "", false
	}
	return value, true
}
