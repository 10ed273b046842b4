// Package deepmerge iç içe map'ler için birleştirme kuralları sunar:
// yaprak değerler değiştirilir, iç içe map'ler özyinelemeli birleştirilir,
// diziler eleman eleman değil bütün olarak değiştirilir.
package deepmerge

import "strings"

// Maps base üzerine override'ı uygular ve yeni bir map döndürür.
// Girdi map'leri değiştirilmez.
func Maps(base, override map[string]any) map[string]any {
	return merge(base, override, false)
}

// NonEmpty Maps ile aynıdır ancak kırpılmış hali boş olan string
// yapraklarını yok sayar. Çeviri katmanı bu varyantı kullanır: boş bir
// override, statik değeri silmemelidir.
func NonEmpty(base, override map[string]any) map[string]any {
	return merge(base, override, true)
}

func merge(base, override map[string]any, skipEmpty bool) map[string]any {
	result := make(map[string]any, len(base)+len(override))
	for key, value := range base {
		result[key] = value
	}
	for key, value := range override {
		if nested, ok := value.(map[string]any); ok {
			if existing, ok := result[key].(map[string]any); ok {
				result[key] = merge(existing, nested, skipEmpty)
				continue
			}
			result[key] = merge(nil, nested, skipEmpty)
			continue
		}
		if skipEmpty {
			if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
				continue
			}
		}
		result[key] = value
	}
	return result
}

// SetPath noktalı anahtar yolunu (örn. "rsvp.alreadySubmitted") map
// içinde iç içe düğümler olarak yazar. Yol üzerindeki map olmayan
// düğümler ezilir.
func SetPath(target map[string]any, path, value string) {
	parts := strings.Split(path, ".")
	current := target
	for i, part := range parts {
		if i == len(parts)-1 {
			current[part] = value
			return
		}
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
}
