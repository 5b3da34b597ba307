// Package ports declares the outbound adapters the application services depend on.
package ports

import (
	"context"
	"time"

	"github.com/gewis/gewisweb-api/internal/domain/entity"
	"github.com/gewis/gewisweb-api/internal/domain/i18n"
	"github.com/gewis/gewisweb-api/internal/domain/repository"
)

// ActivityTxRunner runs fn inside a database transaction with repositories bound to it.
type ActivityTxRunner interface {
	RunActivity(ctx context.Context, fn func(
		activities repository.ActivityRepository,
		signups repository.SignupRepository,
	) error) error
}

// Notifier sends out-of-band notifications. Failures are reported, never fatal to the caller.
type Notifier interface {
	ActivityCreated(ctx context.Context, activity *entity.Activity, creator *entity.Member) error
}

// Challenge is an issued CAPTCHA. Question is what the client renders.
type Challenge struct {
	ID        string
	Question  string
	ExpiresAt time.Time
}

// CaptchaStore issues and verifies single-use CAPTCHA challenges.
type CaptchaStore interface {
	Issue(ctx context.Context) (*Challenge, error)
	// Verify consumes the challenge; a second call with the same id fails.
	Verify(ctx context.Context, id, answer string) (bool, error)
}

// SignupSheet is a signup list flattened for export.
type SignupSheet struct {
	Locale       i18n.Locale
	ActivityName string
	ListName     string
	Location     string
	BeginTime    time.Time
	EndTime      time.Time
	Columns      []string
	Rows         [][]string
	GeneratedAt  time.Time
}

// SignupExporter renders a SignupSheet (e.g. as PDF).
type SignupExporter interface {
	Export(ctx context.Context, sheet SignupSheet) ([]byte, error)
}

// FeedEntry is one item of the activity feed.
type FeedEntry struct {
	ID        string
	Title     string
	Summary   string
	Link      string
	Location  string
	BeginTime time.Time
	EndTime   time.Time
	Updated   time.Time
}

// Feed is the upcoming activity feed in one language.
type Feed struct {
	ID      string
	Title   string
	Link    string
	Locale  i18n.Locale
	Updated time.Time
	Entries []FeedEntry
}

// FeedRenderer serialises a Feed (e.g. as Atom XML).
type FeedRenderer interface {
	Render(feed Feed) ([]byte, error)
}
