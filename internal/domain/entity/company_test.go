package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gewis/gewisweb-api/internal/domain/entity"
	"github.com/gewis/gewisweb-api/internal/domain/i18n"
)

func pkg(kind entity.PackageKind, starts, expires time.Time, published bool) *entity.CompanyPackage {
	return &entity.CompanyPackage{Kind: kind, Starts: starts, Expires: expires, Published: published}
}

func TestCompanyPackage_ExpiredIsNeverActive(t *testing.T) {
	p := pkg(entity.PackageJob, now.Add(-48*time.Hour), now.Add(-time.Hour), true)

	assert.True(t, p.IsExpired(now))
	assert.False(t, p.IsActive(now))
	assert.True(t, p.Published, "IsActive does not mutate")

	assert.True(t, p.UnpublishIfExpired(now))
	assert.False(t, p.Published)
	assert.False(t, p.IsActive(now))
	assert.False(t, p.UnpublishIfExpired(now), "second sweep is a no-op")
}

func TestCompanyPackage_NotStartedOrUnpublished(t *testing.T) {
	future := pkg(entity.PackageJob, now.Add(time.Hour), now.Add(48*time.Hour), true)
	assert.False(t, future.IsActive(now))
	assert.False(t, future.UnpublishIfExpired(now))

	draft := pkg(entity.PackageJob, now.Add(-time.Hour), now.Add(time.Hour), false)
	assert.False(t, draft.IsActive(now))

	running := pkg(entity.PackageJob, now.Add(-time.Hour), now.Add(time.Hour), true)
	assert.True(t, running.IsActive(now))
}

func TestCompany_IsHidden(t *testing.T) {
	expired := &entity.Company{Packages: []*entity.CompanyPackage{
		pkg(entity.PackageJob, now.Add(-72*time.Hour), now.Add(-48*time.Hour), true),
		pkg(entity.PackageBanner, now.Add(-72*time.Hour), now.Add(-time.Hour), false),
	}}
	assert.True(t, expired.IsHidden(now), "all packages expired hides the company")

	visible := &entity.Company{Packages: []*entity.CompanyPackage{
		pkg(entity.PackageJob, now.Add(-time.Hour), now.Add(time.Hour), true),
	}}
	assert.False(t, visible.IsHidden(now))

	visible.Hidden = true
	assert.True(t, visible.IsHidden(now))

	assert.True(t, (&entity.Company{}).IsHidden(now), "no packages at all")
}

func TestCompany_NumberOfActiveJobs(t *testing.T) {
	cat := "cat-1"
	other := "cat-2"
	active := pkg(entity.PackageJob, now.Add(-time.Hour), now.Add(time.Hour), true)
	active.Jobs = []*entity.Job{
		{Active: true, CategoryID: &cat},
		{Active: true, CategoryID: &other},
		{Active: true},
		{Active: false, CategoryID: &cat},
	}
	expired := pkg(entity.PackageJob, now.Add(-72*time.Hour), now.Add(-time.Hour), true)
	expired.Jobs = []*entity.Job{{Active: true, CategoryID: &cat}}

	c := &entity.Company{Packages: []*entity.CompanyPackage{active, expired}}

	assert.Equal(t, 3, c.NumberOfActiveJobs(now, false, nil))
	assert.Equal(t, 1, c.NumberOfActiveJobs(now, true, &cat))
	assert.Equal(t, 1, c.NumberOfActiveJobs(now, true, nil), "nil category matches jobs without category")
}

func TestCompany_FeaturedAndBanner(t *testing.T) {
	nl := pkg(entity.PackageFeatured, now.Add(-time.Hour), now.Add(time.Hour), true)
	nl.Language = i18n.Dutch
	en := pkg(entity.PackageFeatured, now.Add(-time.Hour), now.Add(-time.Minute), true)
	en.Language = i18n.English
	banner := pkg(entity.PackageBanner, now.Add(-time.Hour), now.Add(time.Hour), true)

	c := &entity.Company{Packages: []*entity.CompanyPackage{nl, en}}
	assert.Equal(t, []i18n.Locale{i18n.Dutch}, c.FeaturedLanguages(now))
	assert.False(t, c.IsBannerActive(now))

	c.Packages = append(c.Packages, banner)
	assert.True(t, c.IsBannerActive(now))
}

func TestCompany_TranslationFallback(t *testing.T) {
	c := &entity.Company{Translations: []entity.CompanyI18n{{Language: i18n.Dutch, Slogan: "Werk bij ons"}}}
	assert.Equal(t, "Werk bij ons", c.Translation(i18n.English).Slogan)
	assert.Nil(t, (&entity.Company{}).Translation(i18n.Dutch))
}
