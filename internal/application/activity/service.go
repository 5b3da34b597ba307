// Package activity implements the activity use cases: lifecycle, queries, signups and exports.
package activity

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/gewis/gewisweb-api/internal/application/ports"
	"github.com/gewis/gewisweb-api/internal/application/validation"
	"github.com/gewis/gewisweb-api/internal/domain"
	"github.com/gewis/gewisweb-api/internal/domain/acl"
	"github.com/gewis/gewisweb-api/internal/domain/entity"
	"github.com/gewis/gewisweb-api/internal/domain/i18n"
	"github.com/gewis/gewisweb-api/internal/domain/repository"
)

// Deps groups the collaborators of Service. Notifier, Captcha, Exporter and Feed may be nil;
// the operations depending on them then fail or degrade as documented.
type Deps struct {
	ACL        *acl.ACL
	Activities repository.ActivityRepository
	Signups    repository.SignupRepository
	Members    repository.MemberRepository
	Tx         ports.ActivityTxRunner
	Validator  *validation.Validator
	Notifier   ports.Notifier
	Captcha    ports.CaptchaStore
	Exporter   ports.SignupExporter
	Feed       ports.FeedRenderer
	Location   *time.Location
	Logger     zerolog.Logger
	Now        func() time.Time
}

// Service applies the activity rules on top of the persistence ports.
type Service struct {
	acl        *acl.ACL
	activities repository.ActivityRepository
	signups    repository.SignupRepository
	members    repository.MemberRepository
	tx         ports.ActivityTxRunner
	validator  *validation.Validator
	notifier   ports.Notifier
	captcha    ports.CaptchaStore
	exporter   ports.SignupExporter
	feed       ports.FeedRenderer
	loc        *time.Location
	log        zerolog.Logger
	now        func() time.Time
}

// NewService builds the service.
func NewService(d Deps) *Service {
	s := &Service{
		acl:        d.ACL,
		activities: d.Activities,
		signups:    d.Signups,
		members:    d.Members,
		tx:         d.Tx,
		validator:  d.Validator,
		notifier:   d.Notifier,
		captcha:    d.Captcha,
		exporter:   d.Exporter,
		feed:       d.Feed,
		loc:        d.Location,
		log:        d.Logger.With().Str("component", "activity").Logger(),
		now:        d.Now,
	}
	if s.acl == nil {
		s.acl = acl.Default()
	}
	if s.validator == nil {
		s.validator = validation.New()
	}
	if s.loc == nil {
		s.loc = time.UTC
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// notAllowed builds the translated permission error.
func notAllowed(l i18n.Locale, resource, action, key string) error {
	return &domain.NotAllowedError{Resource: resource, Action: action, Message: i18n.Translate(l, key)}
}

func (s *Service) require(p acl.Principal, l i18n.Locale, resource, action, key string) error {
	if !p.Can(s.acl, resource, action) {
		return notAllowed(l, resource, action, key)
	}
	return nil
}

// load returns the activity or domain.ErrNotFound.
func (s *Service) load(ctx context.Context, id string) (*entity.Activity, error) {
	a, err := s.activities.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, fmt.Errorf("activity %s: %w", id, domain.ErrNotFound)
	}
	return a, nil
}

// loadList returns the activity and its list, or domain.ErrNotFound.
func (s *Service) loadList(ctx context.Context, activityID, listID string) (*entity.Activity, *entity.SignupList, error) {
	a, err := s.load(ctx, activityID)
	if err != nil {
		return nil, nil, err
	}
	list := a.SignupList(listID)
	if list == nil {
		return nil, nil, fmt.Errorf("signup list %s: %w", listID, domain.ErrNotFound)
	}
	return a, list, nil
}

// visible reports whether p may see a in its current status.
func (s *Service) visible(p acl.Principal, a *entity.Activity) bool {
	switch a.Status {
	case entity.StatusApproved:
		return p.Can(s.acl, acl.ResourceActivity, acl.ActionView)
	case entity.StatusToApprove:
		return (!p.IsGuest() && a.CreatorID == p.MemberID) || p.Can(s.acl, acl.ResourceActivity, acl.ActionViewUnapproved)
	case entity.StatusDisapproved:
		return (!p.IsGuest() && a.CreatorID == p.MemberID) || p.Can(s.acl, acl.ResourceActivity, acl.ActionViewDisapproved)
	}
	return false
}
