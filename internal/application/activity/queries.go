package activity

import (
	"context"
	"fmt"

	"github.com/gewis/gewisweb-api/internal/domain"
	"github.com/gewis/gewisweb-api/internal/domain/acl"
	domainactivity "github.com/gewis/gewisweb-api/internal/domain/activity"
	"github.com/gewis/gewisweb-api/internal/domain/entity"
	"github.com/gewis/gewisweb-api/internal/domain/i18n"
	"github.com/gewis/gewisweb-api/internal/domain/period"
)

// Get returns the activity translated to l. Activities p may not see are reported as not found.
func (s *Service) Get(ctx context.Context, p acl.Principal, id string, l i18n.Locale) (*domainactivity.Translation, error) {
	a, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.visible(p, a) {
		return nil, fmt.Errorf("activity %s: %w", id, domain.ErrNotFound)
	}
	return domainactivity.Translate(a, l), nil
}

// ListByStatus lists the activities in status, for principals allowed to see that status.
func (s *Service) ListByStatus(ctx context.Context, p acl.Principal, status entity.ActivityStatus, l i18n.Locale) ([]*entity.Activity, error) {
	var action, key string
	switch status {
	case entity.StatusToApprove:
		action, key = acl.ActionViewUnapproved, i18n.MsgNotAllowedViewUnapproved
	case entity.StatusApproved:
		action, key = acl.ActionViewApproved, i18n.MsgNotAllowedViewApproved
	case entity.StatusDisapproved:
		action, key = acl.ActionViewDisapproved, i18n.MsgNotAllowedViewDisapproved
	default:
		return nil, fmt.Errorf("%w: unknown status %d", domain.ErrInvalidInput, int(status))
	}
	if err := s.require(p, l, acl.ResourceActivity, action, key); err != nil {
		return nil, err
	}
	return s.activities.ListByStatus(ctx, status)
}

// Upcoming lists the approved activities that have not ended, translated to l.
func (s *Service) Upcoming(ctx context.Context, p acl.Principal, l i18n.Locale) ([]*domainactivity.Translation, error) {
	if err := s.require(p, l, acl.ResourceActivity, acl.ActionViewUpcoming, i18n.MsgNotAllowedViewUpcoming); err != nil {
		return nil, err
	}
	list, err := s.activities.ListUpcoming(ctx, s.now())
	if err != nil {
		return nil, err
	}
	return translateAll(list, l), nil
}

// Archive lists the approved activities beginning in association year y, translated to l.
func (s *Service) Archive(ctx context.Context, p acl.Principal, y period.AssociationYear, l i18n.Locale) ([]*domainactivity.Translation, error) {
	if err := s.require(p, l, acl.ResourceActivity, acl.ActionView, i18n.MsgNotAllowedViewApproved); err != nil {
		return nil, err
	}
	w := y.Window(s.loc)
	list, err := s.activities.ListApprovedBetween(ctx, w.Start, w.End)
	if err != nil {
		return nil, err
	}
	return translateAll(list, l), nil
}

// CurrentAssociationYear is the association year at the service clock.
func (s *Service) CurrentAssociationYear() period.AssociationYear {
	return period.AssociationYearOf(s.now().In(s.loc))
}

// KioskList returns the upcoming approved activities untranslated, for the narrowcasting screens.
func (s *Service) KioskList(ctx context.Context) ([]*entity.Activity, error) {
	return s.activities.ListUpcoming(ctx, s.now())
}

func translateAll(list []*entity.Activity, l i18n.Locale) []*domainactivity.Translation {
	out := make([]*domainactivity.Translation, 0, len(list))
	for _, a := range list {
		out = append(out, domainactivity.Translate(a, l))
	}
	return out
}
