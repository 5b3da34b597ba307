package dto

import "time"

// CreateCompanyRequest creates a company with its per-language data.
type CreateCompanyRequest struct {
	Name         string               `json:"name" validate:"required,min=1,max=200"`
	SlugName     string               `json:"slugName" validate:"required,min=1,max=64"`
	ContactName  string               `json:"contactName" validate:"max=200"`
	Address      string               `json:"address" validate:"max=500"`
	Email        string               `json:"email" validate:"omitempty,email"`
	Phone        string               `json:"phone" validate:"max=50"`
	Hidden       bool                 `json:"hidden"`
	Translations []CompanyI18nRequest `json:"translations" validate:"dive"`
}

// CompanyI18nRequest is the company data for one language.
type CompanyI18nRequest struct {
	Language    string `json:"language" validate:"required,oneof=nl en"`
	Slogan      string `json:"slogan" validate:"max=200"`
	Website     string `json:"website" validate:"omitempty,url"`
	Description string `json:"description" validate:"max=100000"`
	Logo        string `json:"logo" validate:"max=500"`
}

// CreatePackageRequest adds a package to a company.
type CreatePackageRequest struct {
	Kind      string       `json:"kind" validate:"required,oneof=job banner featured"`
	Starts    string       `json:"starts" validate:"required,datetime=2006-01-02 15:04"`
	Expires   string       `json:"expires" validate:"required,datetime=2006-01-02 15:04"`
	Published bool         `json:"published"`
	Image     string       `json:"image" validate:"max=500"`
	Language  string       `json:"language" validate:"omitempty,oneof=nl en"`
	Article   string       `json:"article"`
	ArticleEn string       `json:"articleEn"`
	Jobs      []JobRequest `json:"jobs" validate:"dive"`
}

// JobRequest is a vacancy inside a job package.
type JobRequest struct {
	Name          string   `json:"name" validate:"required_without=NameEn,max=200"`
	NameEn        string   `json:"nameEn" validate:"max=200"`
	Slug          string   `json:"slug" validate:"required,max=64"`
	Active        bool     `json:"active"`
	Category      string   `json:"category" validate:"max=64"`
	Labels        []string `json:"labels"`
	Website       string   `json:"website" validate:"omitempty,url"`
	Email         string   `json:"email" validate:"omitempty,email"`
	Phone         string   `json:"phone" validate:"max=50"`
	Location      string   `json:"location" validate:"max=200"`
	LocationEn    string   `json:"locationEn" validate:"max=200"`
	Description   string   `json:"description"`
	DescriptionEn string   `json:"descriptionEn"`
}

// CompanyResponse is a company as shown to the requester's language.
type CompanyResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	SlugName    string            `json:"slugName"`
	ContactName string            `json:"contactName,omitempty"`
	Address     string            `json:"address"`
	Email       string            `json:"email"`
	Phone       string            `json:"phone"`
	Hidden      bool              `json:"hidden"`
	Slogan      string            `json:"slogan"`
	Website     string            `json:"website"`
	Description string            `json:"description"`
	Logo        string            `json:"logo"`
	ActiveJobs  int               `json:"activeJobs"`
	Packages    []PackageResponse `json:"packages,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// PackageResponse is a company package.
type PackageResponse struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Starts    time.Time `json:"starts"`
	Expires   time.Time `json:"expires"`
	Published bool      `json:"published"`
	Active    bool      `json:"active"`
	Expired   bool      `json:"expired"`
}

// JobResponse is an active vacancy in the requester's language.
type JobResponse struct {
	ID          string   `json:"id"`
	Company     string   `json:"company"`
	CompanySlug string   `json:"companySlug"`
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Category    *string  `json:"category,omitempty"`
	Labels      []string `json:"labels,omitempty"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Website     string   `json:"website,omitempty"`
	Email       string   `json:"email,omitempty"`
	Phone       string   `json:"phone,omitempty"`
}

// BannerResponse is the randomly selected active banner.
type BannerResponse struct {
	Company     string `json:"company"`
	CompanySlug string `json:"companySlug"`
	Image       string `json:"image"`
}

// FeaturedResponse is the featured company article for a language.
type FeaturedResponse struct {
	Company     string `json:"company"`
	CompanySlug string `json:"companySlug"`
	Language    string `json:"language"`
	Article     string `json:"article"`
}
