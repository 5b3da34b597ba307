package company

import (
	"time"

	"github.com/gewis/gewisweb-api/internal/application/dto"
	"github.com/gewis/gewisweb-api/internal/domain/entity"
	"github.com/gewis/gewisweb-api/internal/domain/i18n"
)

func toCompanyResponse(c *entity.Company, now time.Time, l i18n.Locale, withPackages bool) *dto.CompanyResponse {
	r := &dto.CompanyResponse{
		ID:         c.ID,
		Name:       c.Name,
		SlugName:   c.SlugName,
		Address:    c.Address,
		Email:      c.Email,
		Phone:      c.Phone,
		Hidden:     c.IsHidden(now),
		ActiveJobs: c.NumberOfActiveJobs(now, false, nil),
		CreatedAt:  c.CreatedAt,
	}
	if t := c.Translation(l); t != nil {
		r.Slogan = t.Slogan
		r.Website = t.Website
		r.Description = t.Description
		r.Logo = t.Logo
	}
	if withPackages {
		r.ContactName = c.ContactName
		for _, p := range c.Packages {
			r.Packages = append(r.Packages, toPackageResponse(p, now))
		}
	}
	return r
}

func toPackageResponse(p *entity.CompanyPackage, now time.Time) dto.PackageResponse {
	return dto.PackageResponse{
		ID:        p.ID,
		Kind:      string(p.Kind),
		Starts:    p.Starts,
		Expires:   p.Expires,
		Published: p.Published,
		Active:    p.IsActive(now),
		Expired:   p.IsExpired(now),
	}
}

func toJobResponse(c *entity.Company, j *entity.Job, l i18n.Locale) dto.JobResponse {
	return dto.JobResponse{
		ID:          j.ID,
		Company:     c.Name,
		CompanySlug: c.SlugName,
		Name:        j.Name.String(l),
		Slug:        j.Slug,
		Category:    j.CategoryID,
		Labels:      j.Labels,
		Location:    j.Location.String(l),
		Description: j.Description.String(l),
		Website:     j.Website,
		Email:       j.Email,
		Phone:       j.Phone,
	}
}
