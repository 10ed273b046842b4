package site

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"dugun.link/locales"
)

// RequestLocale istemcinin dilini belirler: önce ?lang sorgusu, sonra
// Accept-Language başlığı, en son varsayılan dil.
func RequestLocale(c *fiber.Ctx) string {
	if lang := strings.ToLower(strings.TrimSpace(c.Query("lang"))); locales.IsSupported(lang) {
		return lang
	}
	header := c.Get(fiber.HeaderAcceptLanguage)
	for _, part := range strings.Split(header, ",") {
		tag := strings.ToLower(strings.TrimSpace(strings.SplitN(part, ";", 2)[0]))
		if idx := strings.Index(tag, "-"); idx > 0 {
			tag = tag[:idx]
		}
		if locales.IsSupported(tag) {
			return tag
		}
	}
	return locales.DefaultLocale
}
