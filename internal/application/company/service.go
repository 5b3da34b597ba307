// Package company implements the career pages: companies, packages, jobs, banners and featured articles.
package company

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gewis/gewisweb-api/internal/application/dto"
	"github.com/gewis/gewisweb-api/internal/application/validation"
	"github.com/gewis/gewisweb-api/internal/domain"
	"github.com/gewis/gewisweb-api/internal/domain/acl"
	"github.com/gewis/gewisweb-api/internal/domain/entity"
	"github.com/gewis/gewisweb-api/internal/domain/i18n"
	"github.com/gewis/gewisweb-api/internal/domain/repository"
)

// Service applies the company rules.
type Service struct {
	acl        *acl.ACL
	companies  repository.CompanyRepository
	packages   repository.PackageRepository
	categories repository.JobCategoryRepository
	validator  *validation.Validator
	loc        *time.Location
	log        zerolog.Logger
	now        func() time.Time
	pick       func(n int) int
}

// NewService builds the service. A nil clock uses time.Now.
func NewService(
	a *acl.ACL,
	companies repository.CompanyRepository,
	packages repository.PackageRepository,
	categories repository.JobCategoryRepository,
	v *validation.Validator,
	loc *time.Location,
	log zerolog.Logger,
	now func() time.Time,
) *Service {
	if a == nil {
		a = acl.Default()
	}
	if v == nil {
		v = validation.New()
	}
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &Service{
		acl:        a,
		companies:  companies,
		packages:   packages,
		categories: categories,
		validator:  v,
		loc:        loc,
		log:        log.With().Str("component", "company").Logger(),
		now:        now,
		pick:       rand.IntN,
	}
}

func notAllowed(l i18n.Locale, resource, action, key string) error {
	return &domain.NotAllowedError{Resource: resource, Action: action, Message: i18n.Translate(l, key)}
}

// Create stores a new company. The slug must be unique (domain.ErrDuplicate).
func (s *Service) Create(ctx context.Context, p acl.Principal, in dto.CreateCompanyRequest, l i18n.Locale) (*dto.CompanyResponse, error) {
	if !p.Can(s.acl, acl.ResourceCompany, acl.ActionEdit) {
		return nil, notAllowed(l, acl.ResourceCompany, acl.ActionEdit, i18n.MsgNotAllowedCompany)
	}
	if err := s.validator.Struct(in, l); err != nil {
		return nil, err
	}
	now := s.now()
	c := &entity.Company{
		ID:          uuid.New().String(),
		Name:        in.Name,
		SlugName:    strings.ToLower(strings.TrimSpace(in.SlugName)),
		ContactName: in.ContactName,
		Address:     in.Address,
		Email:       in.Email,
		Phone:       in.Phone,
		Hidden:      in.Hidden,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, t := range in.Translations {
		c.Translations = append(c.Translations, entity.CompanyI18n{
			CompanyID:   c.ID,
			Language:    i18n.Locale(t.Language),
			Slogan:      t.Slogan,
			Website:     t.Website,
			Description: t.Description,
			Logo:        t.Logo,
		})
	}
	if err := s.companies.Create(ctx, c); err != nil {
		return nil, err
	}
	s.log.Info().Str("company_id", c.ID).Str("slug", c.SlugName).Msg("company created")
	return toCompanyResponse(c, now, l, true), nil
}

// GetBySlug returns a company. Hidden companies are not found for principals without view_hidden.
func (s *Service) GetBySlug(ctx context.Context, p acl.Principal, slug string, l i18n.Locale) (*dto.CompanyResponse, error) {
	c, err := s.companies.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	now := s.now()
	canSeeHidden := p.Can(s.acl, acl.ResourceCompany, acl.ActionViewHidden)
	if c == nil || (c.IsHidden(now) && !canSeeHidden) {
		return nil, fmt.Errorf("company %s: %w", slug, domain.ErrNotFound)
	}
	return toCompanyResponse(c, now, l, canSeeHidden), nil
}

// ListVisible returns the companies that are not hidden, by name.
func (s *Service) ListVisible(ctx context.Context, l i18n.Locale) ([]dto.CompanyResponse, error) {
	list, err := s.companies.List(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	out := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		if c.IsHidden(now) {
			continue
		}
		out = append(out, *toCompanyResponse(c, now, l, false))
	}
	return out, nil
}

// AddPackage adds a job, banner or featured package to a company.
func (s *Service) AddPackage(ctx context.Context, p acl.Principal, slug string, in dto.CreatePackageRequest, l i18n.Locale) (*dto.PackageResponse, error) {
	if !p.Can(s.acl, acl.ResourcePackage, acl.ActionEdit) {
		return nil, notAllowed(l, acl.ResourcePackage, acl.ActionEdit, i18n.MsgNotAllowedCompany)
	}
	if err := s.validator.Struct(in, l); err != nil {
		return nil, err
	}
	c, err := s.companies.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("company %s: %w", slug, domain.ErrNotFound)
	}
	pkg, err := s.buildPackage(ctx, c.ID, in)
	if err != nil {
		return nil, err
	}
	if err := s.packages.Create(ctx, pkg); err != nil {
		return nil, err
	}
	s.log.Info().Str("company_id", c.ID).Str("package_id", pkg.ID).Str("kind", string(pkg.Kind)).Msg("package added")
	r := toPackageResponse(pkg, s.now())
	return &r, nil
}

func (s *Service) buildPackage(ctx context.Context, companyID string, in dto.CreatePackageRequest) (*entity.CompanyPackage, error) {
	starts, _ := validation.ParseDateTime(in.Starts, s.loc)
	expires, _ := validation.ParseDateTime(in.Expires, s.loc)
	pkg := &entity.CompanyPackage{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Kind:      entity.PackageKind(in.Kind),
		Starts:    starts,
		Expires:   expires,
		Published: in.Published,
		CreatedAt: s.now(),
	}
	switch pkg.Kind {
	case entity.PackageBanner:
		pkg.Image = in.Image
	case entity.PackageFeatured:
		pkg.Language = i18n.Locale(in.Language)
		if pkg.Language == "" {
			pkg.Language = i18n.Dutch
		}
		pkg.Article = i18n.FromStrings(in.Article, in.ArticleEn)
	case entity.PackageJob:
		for _, j := range in.Jobs {
			job := &entity.Job{
				ID:          uuid.New().String(),
				PackageID:   pkg.ID,
				Name:        i18n.FromStrings(j.Name, j.NameEn),
				Slug:        j.Slug,
				Active:      j.Active,
				Labels:      j.Labels,
				Website:     j.Website,
				Email:       j.Email,
				Phone:       j.Phone,
				Location:    i18n.FromStrings(j.Location, j.LocationEn),
				Description: i18n.FromStrings(j.Description, j.DescriptionEn),
				CreatedAt:   pkg.CreatedAt,
			}
			if j.Category != "" {
				cat, err := s.categories.GetBySlug(ctx, j.Category)
				if err != nil {
					return nil, err
				}
				if cat == nil {
					return nil, fmt.Errorf("%w: unknown job category %q", domain.ErrInvalidInput, j.Category)
				}
				job.CategoryID = &cat.ID
			}
			pkg.Jobs = append(pkg.Jobs, job)
		}
	}
	return pkg, nil
}

// Jobs lists the active jobs of active job packages of visible companies. With a category slug
// only jobs of that category are returned.
func (s *Service) Jobs(ctx context.Context, categorySlug string, l i18n.Locale) ([]dto.JobResponse, error) {
	var categoryID *string
	if categorySlug != "" {
		cat, err := s.categories.GetBySlug(ctx, categorySlug)
		if err != nil {
			return nil, err
		}
		if cat == nil {
			return nil, fmt.Errorf("job category %s: %w", categorySlug, domain.ErrNotFound)
		}
		categoryID = &cat.ID
	}
	list, err := s.companies.List(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	out := []dto.JobResponse{}
	for _, c := range list {
		if c.IsHidden(now) || c.NumberOfActiveJobs(now, categoryID != nil, categoryID) == 0 {
			continue
		}
		for _, p := range c.Packages {
			if p.Kind != entity.PackageJob || !p.IsActive(now) {
				continue
			}
			for _, j := range p.Jobs {
				if !j.Active || (categoryID != nil && (j.CategoryID == nil || *j.CategoryID != *categoryID)) {
					continue
				}
				out = append(out, toJobResponse(c, j, l))
			}
		}
	}
	return out, nil
}

// RandomBanner picks one active banner uniformly among the visible companies; nil when none.
func (s *Service) RandomBanner(ctx context.Context) (*dto.BannerResponse, error) {
	list, err := s.companies.List(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	var banners []dto.BannerResponse
	for _, c := range list {
		if c.IsHidden(now) || !c.IsBannerActive(now) {
			continue
		}
		for _, p := range c.Packages {
			if p.Kind == entity.PackageBanner && p.IsActive(now) {
				banners = append(banners, dto.BannerResponse{Company: c.Name, CompanySlug: c.SlugName, Image: p.Image})
			}
		}
	}
	if len(banners) == 0 {
		return nil, nil
	}
	b := banners[s.pick(len(banners))]
	return &b, nil
}

// Featured returns the featured article in l, picked uniformly among companies featuring in l.
func (s *Service) Featured(ctx context.Context, l i18n.Locale) (*dto.FeaturedResponse, error) {
	list, err := s.companies.List(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	var featured []dto.FeaturedResponse
	for _, c := range list {
		if c.IsHidden(now) || !featuresIn(c.FeaturedLanguages(now), l) {
			continue
		}
		for _, p := range c.Packages {
			if p.Kind != entity.PackageFeatured || !p.IsActive(now) || p.Language != l {
				continue
			}
			featured = append(featured, dto.FeaturedResponse{
				Company:     c.Name,
				CompanySlug: c.SlugName,
				Language:    l.String(),
				Article:     p.Article.String(l),
			})
		}
	}
	if len(featured) == 0 {
		return nil, nil
	}
	f := featured[s.pick(len(featured))]
	return &f, nil
}

func featuresIn(langs []i18n.Locale, l i18n.Locale) bool {
	for _, x := range langs {
		if x == l {
			return true
		}
	}
	return false
}

// UnpublishExpired clears the published flag of every expired package and returns how many changed.
func (s *Service) UnpublishExpired(ctx context.Context, p acl.Principal, l i18n.Locale) (int64, error) {
	if !p.Can(s.acl, acl.ResourcePackage, acl.ActionSweep) {
		return 0, notAllowed(l, acl.ResourcePackage, acl.ActionSweep, i18n.MsgNotAllowedSweep)
	}
	return s.SweepExpired(ctx)
}

// SweepExpired is the unauthenticated variant used by the scheduler and the CLI.
func (s *Service) SweepExpired(ctx context.Context) (int64, error) {
	n, err := s.packages.UnpublishExpired(ctx, s.now())
	if err != nil {
		return 0, err
	}
	s.log.Info().Int64("unpublished", n).Msg("expired packages swept")
	return n, nil
}
