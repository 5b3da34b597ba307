package repository

import (
	"context"
	"time"

	"github.com/gewis/gewisweb-api/internal/domain/entity"
)

// CompanyRepository is the persistence port for companies (with translations, packages and jobs).
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetBySlug(ctx context.Context, slug string) (*entity.Company, error)
	List(ctx context.Context) ([]*entity.Company, error)
}

// PackageRepository is the persistence port for company packages.
type PackageRepository interface {
	Create(ctx context.Context, pkg *entity.CompanyPackage) error
	// UnpublishExpired clears published on every package that expired before now.
	UnpublishExpired(ctx context.Context, now time.Time) (int64, error)
}

// JobCategoryRepository is the persistence port for job categories.
type JobCategoryRepository interface {
	GetBySlug(ctx context.Context, slug string) (*entity.JobCategory, error)
	List(ctx context.Context) ([]*entity.JobCategory, error)
}
