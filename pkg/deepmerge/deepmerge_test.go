package deepmerge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaps_NestedMerge(t *testing.T) {
	base := map[string]any{
		"couple": map[string]any{
			"brideName": "Ayşe",
			"groomName": "Mehmet",
		},
		"theme": map[string]any{"primaryColor": "#AAA"},
	}
	override := map[string]any{
		"couple": map[string]any{"brideName": "Zeynep"},
	}

	result := Maps(base, override)

	couple := result["couple"].(map[string]any)
	assert.Equal(t, "Zeynep", couple["brideName"])
	assert.Equal(t, "Mehmet", couple["groomName"], "override'da olmayan alan korunmalı")
	assert.Equal(t, "#AAA", result["theme"].(map[string]any)["primaryColor"])
}

func TestMaps_ArraysReplacedWholesale(t *testing.T) {
	base := map[string]any{"locations": []any{"a", "b", "c"}}
	override := map[string]any{"locations": []any{"x"}}

	result := Maps(base, override)

	assert.Equal(t, []any{"x"}, result["locations"])
}

func TestMaps_DoesNotMutateInputs(t *testing.T) {
	base := map[string]any{"hero": map[string]any{"title": "orijinal"}}
	override := map[string]any{"hero": map[string]any{"title": "yeni"}}

	_ = Maps(base, override)

	assert.Equal(t, "orijinal", base["hero"].(map[string]any)["title"])
}

func TestNonEmpty_SkipsBlankStrings(t *testing.T) {
	base := map[string]any{
		"rsvp": map[string]any{"title": "LCV", "submit": "Gönder"},
	}
	override := map[string]any{
		"rsvp": map[string]any{"title": "   ", "submit": "Yanıtla"},
	}

	result := NonEmpty(base, override)

	rsvp := result["rsvp"].(map[string]any)
	assert.Equal(t, "LCV", rsvp["title"], "boş override statik değeri silmemeli")
	assert.Equal(t, "Yanıtla", rsvp["submit"])
}

func TestSetPath(t *testing.T) {
	target := map[string]any{}

	SetPath(target, "rsvp.alreadySubmitted", "zaten gönderildi")
	SetPath(target, "rsvp.title", "LCV")
	SetPath(target, "plain", "düz")

	rsvp := target["rsvp"].(map[string]any)
	assert.Equal(t, "zaten gönderildi", rsvp["alreadySubmitted"])
	assert.Equal(t, "LCV", rsvp["title"])
	assert.Equal(t, "düz", target["plain"])
}

func TestSetPath_OverwritesNonMapNode(t *testing.T) {
	target := map[string]any{"rsvp": "düz değer"}

	SetPath(target, "rsvp.title", "LCV")

	assert.Equal(t, "LCV", target["rsvp"].(map[string]any)["title"])
}
