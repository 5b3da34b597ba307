package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gewis/gewisweb-api/internal/domain/i18n"
)

const langCookie = "lang"

// LocaleMiddleware picks the request language: ?lang=, then the lang cookie, then Accept-Language.
// An explicit ?lang= is remembered in the cookie.
func LocaleMiddleware(def i18n.Locale) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if q := c.Query("lang"); q != "" {
			if l, err := i18n.ParseLocale(q); err == nil {
				c.Cookie(&fiber.Cookie{
					Name:     langCookie,
					Value:    l.String(),
					Path:     "/",
					Expires:  time.Now().AddDate(1, 0, 0),
					SameSite: fiber.CookieSameSiteLaxMode,
				})
				c.Locals(LocalLocale, l)
				return c.Next()
			}
		}
		if l, err := i18n.ParseLocale(c.Cookies(langCookie)); err == nil {
			c.Locals(LocalLocale, l)
			return c.Next()
		}
		c.Locals(LocalLocale, i18n.Negotiate(c.Get(fiber.HeaderAcceptLanguage), def))
		return c.Next()
	}
}

// GetLocale returns the request language, Dutch when LocaleMiddleware did not run.
func GetLocale(c *fiber.Ctx) i18n.Locale {
	l, ok := c.Locals(LocalLocale).(i18n.Locale)
	if !ok {
		return i18n.Dutch
	}
	return l
}
