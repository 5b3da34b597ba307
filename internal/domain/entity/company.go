package entity

import (
	"time"

	"github.com/gewis/gewisweb-api/internal/domain/i18n"
)

// Company is a sponsor or employer presented on the career pages.
type Company struct {
	ID           string
	Name         string
	SlugName     string
	ContactName  string
	Address      string
	Email        string
	Phone        string
	Hidden       bool
	Translations []CompanyI18n
	Packages     []*CompanyPackage
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CompanyI18n carries the language-dependent company data (one row per language).
type CompanyI18n struct {
	CompanyID   string
	Language    i18n.Locale
	Slogan      string
	Website     string
	Description string
	Logo        string
}

// Translation returns the row for l, falling back to the other language, or nil if none exist.
func (c *Company) Translation(l i18n.Locale) *CompanyI18n {
	var other *CompanyI18n
	for i := range c.Translations {
		t := &c.Translations[i]
		if t.Language == l {
			return t
		}
		if t.Language == l.Other() {
			other = t
		}
	}
	return other
}

// IsHidden: a company is hidden when it is flagged hidden or none of its packages is non-expired.
func (c *Company) IsHidden(now time.Time) bool {
	if c.Hidden {
		return true
	}
	for _, p := range c.Packages {
		if !p.IsExpired(now) {
			return false
		}
	}
	return true
}

// NumberOfActiveJobs counts active jobs in active job packages. With a category filter only
// jobs of that category count; a nil category matches jobs without category.
func (c *Company) NumberOfActiveJobs(now time.Time, filter bool, categoryID *string) int {
	n := 0
	for _, p := range c.Packages {
		if p.Kind != PackageJob || !p.IsActive(now) {
			continue
		}
		for _, j := range p.Jobs {
			if !j.Active {
				continue
			}
			if filter && !sameCategory(j.CategoryID, categoryID) {
				continue
			}
			n++
		}
	}
	return n
}

// FeaturedLanguages returns the languages of the currently active featured packages.
func (c *Company) FeaturedLanguages(now time.Time) []i18n.Locale {
	var out []i18n.Locale
	seen := map[i18n.Locale]bool{}
	for _, p := range c.Packages {
		if p.Kind != PackageFeatured || !p.IsActive(now) || seen[p.Language] {
			continue
		}
		seen[p.Language] = true
		out = append(out, p.Language)
	}
	return out
}

// IsBannerActive reports whether any banner package is currently active.
func (c *Company) IsBannerActive(now time.Time) bool {
	for _, p := range c.Packages {
		if p.Kind == PackageBanner && p.IsActive(now) {
			return true
		}
	}
	return false
}

func sameCategory(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
