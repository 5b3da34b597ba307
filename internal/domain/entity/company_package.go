package entity

import (
	"time"

	"github.com/gewis/gewisweb-api/internal/domain/i18n"
	"github.com/gewis/gewisweb-api/internal/domain/period"
)

// PackageKind values (must match the CHECK on company_packages.kind).
type PackageKind string

const (
	PackageJob      PackageKind = "job"
	PackageBanner   PackageKind = "banner"
	PackageFeatured PackageKind = "featured"
)

// Valid reports whether k is a known package kind.
func (k PackageKind) Valid() bool {
	switch k {
	case PackageJob, PackageBanner, PackageFeatured:
		return true
	}
	return false
}

// CompanyPackage is a time-bounded sponsorship product. Jobs are only used by job packages,
// Image by banner packages, Language and Article by featured packages.
type CompanyPackage struct {
	ID        string
	CompanyID string
	Kind      PackageKind
	Starts    time.Time
	Expires   time.Time
	Published bool
	Jobs      []*Job
	Image     string
	Language  i18n.Locale
	Article   i18n.Text
	CreatedAt time.Time
}

// Window returns [Starts, Expires].
func (p *CompanyPackage) Window() period.Window {
	return period.New(p.Starts, p.Expires)
}

// IsExpired reports whether now is strictly after Expires.
func (p *CompanyPackage) IsExpired(now time.Time) bool {
	return p.Window().IsExpired(now)
}

// IsActive is a pure predicate: published, started and not expired.
func (p *CompanyPackage) IsActive(now time.Time) bool {
	return p.Published && p.Window().IsActive(now)
}

// UnpublishIfExpired clears Published when the package has expired and reports whether it changed.
func (p *CompanyPackage) UnpublishIfExpired(now time.Time) bool {
	if !p.Published || !p.IsExpired(now) {
		return false
	}
	p.Published = false
	return true
}

// Job is a vacancy inside a job package.
type Job struct {
	ID          string
	PackageID   string
	Name        i18n.Text
	Slug        string
	Active      bool
	CategoryID  *string
	Labels      []string
	Website     string
	Email       string
	Phone       string
	Location    i18n.Text
	Description i18n.Text
	CreatedAt   time.Time
}

// JobCategory groups jobs; ID is language neutral.
type JobCategory struct {
	ID     string
	Name   i18n.Text
	Slug   string
	Hidden bool
}
