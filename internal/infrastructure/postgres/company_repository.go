package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/gewis/gewisweb-api/internal/domain"
	"github.com/gewis/gewisweb-api/internal/domain/entity"
	"github.com/gewis/gewisweb-api/internal/domain/i18n"
	"github.com/gewis/gewisweb-api/internal/domain/repository"
)

var (
	_ repository.CompanyRepository     = (*CompanyRepo)(nil)
	_ repository.PackageRepository     = (*PackageRepo)(nil)
	_ repository.JobCategoryRepository = (*JobCategoryRepo)(nil)
)

// CompanyRepo stores companies with their translations. Reads attach packages and jobs.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository builds the company persistence adapter.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

const companyColumns = `id, name, slug_name, contact_name, address, email, phone, hidden, created_at, updated_at`

// Create inserts the company and its translations. A taken slug yields domain.ErrDuplicate.
func (r *CompanyRepo) Create(ctx context.Context, c *entity.Company) error {
	return inTx(ctx, r.q, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO companies (`+companyColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			c.ID, c.Name, c.SlugName, c.ContactName, c.Address, c.Email, c.Phone, c.Hidden,
			c.CreatedAt, c.UpdatedAt,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("insert company: %w", err)
		}
		for _, t := range c.Translations {
			_, err := tx.Exec(ctx, `
				INSERT INTO company_i18n (company_id, language, slogan, website, description, logo)
				VALUES ($1, $2, $3, $4, $5, $6)`,
				c.ID, string(t.Language), t.Slogan, t.Website, t.Description, t.Logo,
			)
			if err != nil {
				return fmt.Errorf("insert company translation: %w", err)
			}
		}
		return nil
	})
}

// GetBySlug returns (nil, nil) when no company has slug.
func (r *CompanyRepo) GetBySlug(ctx context.Context, slug string) (*entity.Company, error) {
	list, err := r.list(ctx, `SELECT `+companyColumns+` FROM companies WHERE slug_name = $1`, slug)
	if err != nil {
		return nil, fmt.Errorf("get company: %w", err)
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

// List returns every company ordered by name.
func (r *CompanyRepo) List(ctx context.Context) ([]*entity.Company, error) {
	list, err := r.list(ctx, `SELECT `+companyColumns+` FROM companies ORDER BY lower(name)`)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	return list, nil
}

func (r *CompanyRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Company, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	var list []*entity.Company
	byID := map[string]*entity.Company{}
	var ids []string
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.SlugName, &c.ContactName, &c.Address, &c.Email, &c.Phone,
			&c.Hidden, &c.CreatedAt, &c.UpdatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
		byID[c.ID] = &c
		ids = append(ids, c.ID)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return list, nil
	}
	if err := r.loadTranslations(ctx, ids, byID); err != nil {
		return nil, err
	}
	if err := loadPackages(ctx, r.q, ids, byID); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *CompanyRepo) loadTranslations(ctx context.Context, ids []string, byID map[string]*entity.Company) error {
	rows, err := r.q.Query(ctx, `
		SELECT company_id, language, slogan, website, description, logo
		FROM company_i18n WHERE company_id = ANY($1) ORDER BY language DESC`, ids)
	if err != nil {
		return fmt.Errorf("list company translations: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var t entity.CompanyI18n
		var lang string
		if err := rows.Scan(&t.CompanyID, &lang, &t.Slogan, &t.Website, &t.Description, &t.Logo); err != nil {
			return fmt.Errorf("scan company translation: %w", err)
		}
		t.Language = i18n.Locale(lang)
		c := byID[t.CompanyID]
		c.Translations = append(c.Translations, t)
	}
	return rows.Err()
}

const packageColumns = `id, company_id, kind, starts, expires, published, image, language, article, article_en, created_at`

func loadPackages(ctx context.Context, q Querier, companyIDs []string, byID map[string]*entity.Company) error {
	rows, err := q.Query(ctx, `SELECT `+packageColumns+`
		FROM company_packages WHERE company_id = ANY($1) ORDER BY starts`, companyIDs)
	if err != nil {
		return fmt.Errorf("list packages: %w", err)
	}
	packages := map[string]*entity.CompanyPackage{}
	var jobPackageIDs []string
	for rows.Next() {
		var (
			p              entity.CompanyPackage
			kind           string
			lang           *string
			article, artEn *string
		)
		if err := rows.Scan(&p.ID, &p.CompanyID, &kind, &p.Starts, &p.Expires, &p.Published, &p.Image,
			&lang, &article, &artEn, &p.CreatedAt); err != nil {
			rows.Close()
			return fmt.Errorf("scan package: %w", err)
		}
		p.Kind = entity.PackageKind(kind)
		if lang != nil {
			p.Language = i18n.Locale(*lang)
		}
		p.Article = i18n.NewText(article, artEn)
		packages[p.ID] = &p
		if p.Kind == entity.PackageJob {
			jobPackageIDs = append(jobPackageIDs, p.ID)
		}
		c := byID[p.CompanyID]
		c.Packages = append(c.Packages, &p)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}
	if len(jobPackageIDs) == 0 {
		return nil
	}

	rows, err = q.Query(ctx, `
		SELECT id, package_id, name, name_en, slug, active, category_id, labels, website, email, phone,
			location, location_en, description, description_en, created_at
		FROM jobs WHERE package_id = ANY($1) ORDER BY created_at`, jobPackageIDs)
	if err != nil {
		return fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			j                        entity.Job
			name, nameEn, loc, locEn *string
			descr, descrEn           *string
		)
		if err := rows.Scan(&j.ID, &j.PackageID, &name, &nameEn, &j.Slug, &j.Active, &j.CategoryID, &j.Labels,
			&j.Website, &j.Email, &j.Phone, &loc, &locEn, &descr, &descrEn, &j.CreatedAt); err != nil {
			return fmt.Errorf("scan job: %w", err)
		}
		j.Name = i18n.NewText(name, nameEn)
		j.Location = i18n.NewText(loc, locEn)
		j.Description = i18n.NewText(descr, descrEn)
		p := packages[j.PackageID]
		p.Jobs = append(p.Jobs, &j)
	}
	return rows.Err()
}

// PackageRepo stores company packages and their jobs.
type PackageRepo struct {
	q Querier
}

func NewPackageRepository(q Querier) *PackageRepo {
	return &PackageRepo{q: q}
}

// Create inserts the package and, for job packages, its jobs.
func (r *PackageRepo) Create(ctx context.Context, p *entity.CompanyPackage) error {
	return inTx(ctx, r.q, func(tx pgx.Tx) error {
		var lang *string
		if p.Language != "" {
			s := string(p.Language)
			lang = &s
		}
		_, err := tx.Exec(ctx, `
			INSERT INTO company_packages (`+packageColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			p.ID, p.CompanyID, string(p.Kind), p.Starts, p.Expires, p.Published, p.Image,
			lang, p.Article.NL(), p.Article.EN(), p.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert package: %w", err)
		}
		for _, j := range p.Jobs {
			labels := j.Labels
			if labels == nil {
				labels = []string{}
			}
			_, err := tx.Exec(ctx, `
				INSERT INTO jobs (id, package_id, name, name_en, slug, active, category_id, labels, website,
					email, phone, location, location_en, description, description_en, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
				j.ID, p.ID, j.Name.NL(), j.Name.EN(), j.Slug, j.Active, nullableString(j.CategoryID), labels,
				j.Website, j.Email, j.Phone, j.Location.NL(), j.Location.EN(),
				j.Description.NL(), j.Description.EN(), j.CreatedAt,
			)
			if err != nil {
				return fmt.Errorf("insert job: %w", err)
			}
		}
		return nil
	})
}

// UnpublishExpired clears published on every package that expired before now.
func (r *PackageRepo) UnpublishExpired(ctx context.Context, now time.Time) (int64, error) {
	cmd, err := r.q.Exec(ctx, `UPDATE company_packages SET published = false WHERE published AND expires < $1`, now)
	if err != nil {
		return 0, fmt.Errorf("unpublish expired packages: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// JobCategoryRepo reads job categories.
type JobCategoryRepo struct {
	q Querier
}

func NewJobCategoryRepository(q Querier) *JobCategoryRepo {
	return &JobCategoryRepo{q: q}
}

func (r *JobCategoryRepo) GetBySlug(ctx context.Context, slug string) (*entity.JobCategory, error) {
	row := r.q.QueryRow(ctx, `SELECT id, name, name_en, slug, hidden FROM job_categories WHERE slug = $1`, slug)
	c, err := scanJobCategory(row)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get job category: %w", err)
	}
	return c, nil
}

func (r *JobCategoryRepo) List(ctx context.Context) ([]*entity.JobCategory, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, name_en, slug, hidden FROM job_categories ORDER BY slug`)
	if err != nil {
		return nil, fmt.Errorf("list job categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.JobCategory
	for rows.Next() {
		c, err := scanJobCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job category: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func scanJobCategory(row pgx.Row) (*entity.JobCategory, error) {
	var c entity.JobCategory
	var name, nameEn *string
	if err := row.Scan(&c.ID, &name, &nameEn, &c.Slug, &c.Hidden); err != nil {
		return nil, err
	}
	c.Name = i18n.NewText(name, nameEn)
	return &c, nil
}
