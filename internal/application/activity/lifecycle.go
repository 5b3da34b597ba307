package activity

import (
	"context"

	"github.com/gewis/gewisweb-api/internal/domain/acl"
	"github.com/gewis/gewisweb-api/internal/domain/entity"
	"github.com/gewis/gewisweb-api/internal/domain/i18n"
)

// Approve moves a TO_APPROVE activity to APPROVED.
func (s *Service) Approve(ctx context.Context, p acl.Principal, id string, l i18n.Locale) (*entity.Activity, error) {
	if err := s.require(p, l, acl.ResourceActivity, acl.ActionApprove, i18n.MsgNotAllowedApproveActivity); err != nil {
		return nil, err
	}
	return s.changeStatus(ctx, id, func(a *entity.Activity) error {
		return a.Approve(p.MemberID, s.now())
	})
}

// Disapprove moves a TO_APPROVE activity to DISAPPROVED.
func (s *Service) Disapprove(ctx context.Context, p acl.Principal, id string, l i18n.Locale) (*entity.Activity, error) {
	if err := s.require(p, l, acl.ResourceActivity, acl.ActionDisapprove, i18n.MsgNotAllowedDisapproveActivity); err != nil {
		return nil, err
	}
	return s.changeStatus(ctx, id, func(a *entity.Activity) error {
		return a.Disapprove(p.MemberID, s.now())
	})
}

// Reset moves an approved or disapproved activity back to TO_APPROVE.
func (s *Service) Reset(ctx context.Context, p acl.Principal, id string, l i18n.Locale) (*entity.Activity, error) {
	if err := s.require(p, l, acl.ResourceActivity, acl.ActionReset, i18n.MsgNotAllowedResetActivity); err != nil {
		return nil, err
	}
	return s.changeStatus(ctx, id, func(a *entity.Activity) error {
		return a.Reset(s.now())
	})
}

func (s *Service) changeStatus(ctx context.Context, id string, apply func(a *entity.Activity) error) (*entity.Activity, error) {
	a, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	from := a.Status
	if err := apply(a); err != nil {
		return nil, err
	}
	if err := s.activities.UpdateStatus(ctx, a); err != nil {
		return nil, err
	}
	s.log.Info().
		Str("activity_id", a.ID).
		Str("from", from.String()).
		Str("status", a.Status.String()).
		Msg("activity status changed")
	return a, nil
}
