// Package i18n holds the bilingual (Dutch/English) primitives shared by every entity.
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/gewis/gewisweb-api/internal/domain"
)

// Locale is one of the two languages the association publishes in.
type Locale string

const (
	Dutch   Locale = "nl"
	English Locale = "en"
)

// Supported lists the locales in preference order for negotiation.
var Supported = []Locale{Dutch, English}

// ParseLocale accepts "nl" or "en" (case-insensitive) and fails with domain.ErrUnsupportedLocale otherwise.
func ParseLocale(s string) (Locale, error) {
	l := Locale(strings.ToLower(strings.TrimSpace(s)))
	if err := l.Validate(); err != nil {
		return "", err
	}
	return l, nil
}

// Validate reports whether l is a supported locale.
func (l Locale) Validate() error {
	switch l {
	case Dutch, English:
		return nil
	}
	return fmt.Errorf("%w: %q", domain.ErrUnsupportedLocale, string(l))
}

// Other returns the fallback language of l.
func (l Locale) Other() Locale {
	if l == English {
		return Dutch
	}
	return English
}

// Tag maps the locale to its BCP 47 tag.
func (l Locale) Tag() language.Tag {
	if l == English {
		return language.English
	}
	return language.Dutch
}

func (l Locale) String() string { return string(l) }

var matcher = language.NewMatcher([]language.Tag{language.Dutch, language.English})

// Negotiate picks the best supported locale for an Accept-Language header value.
// An empty or unparseable header yields def.
func Negotiate(acceptLanguage string, def Locale) Locale {
	if strings.TrimSpace(acceptLanguage) == "" {
		return def
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return def
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return def
	}
	return Supported[idx]
}
