package activity

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/gewis/gewisweb-api/internal/application/dto"
	"github.com/gewis/gewisweb-api/internal/domain"
	"github.com/gewis/gewisweb-api/internal/domain/acl"
	"github.com/gewis/gewisweb-api/internal/domain/entity"
	"github.com/gewis/gewisweb-api/internal/domain/i18n"
)

// SignUp registers member p on a list. The storage uniqueness constraint decides concurrent
// attempts: the losing insert is reported as domain.ErrAlreadySignedUp.
func (s *Service) SignUp(ctx context.Context, p acl.Principal, activityID, listID string, values map[string]string, l i18n.Locale) (*entity.Signup, error) {
	if p.IsGuest() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, i18n.Translate(l, i18n.MsgGuestSignup))
	}
	if err := s.require(p, l, acl.ResourceSignup, acl.ActionSignup, i18n.MsgGuestSignup); err != nil {
		return nil, err
	}
	a, list, err := s.openList(ctx, p, activityID, listID)
	if err != nil {
		return nil, err
	}
	fieldValues, err := s.validator.SignupValues(list, values, l)
	if err != nil {
		return nil, err
	}
	memberID := p.MemberID
	signup := &entity.Signup{
		ID:           uuid.New().String(),
		SignupListID: list.ID,
		Kind:         entity.SignupUser,
		MemberID:     &memberID,
		Values:       fieldValues,
		CreatedAt:    s.now(),
	}
	if err := s.signups.Create(ctx, signup); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.ErrAlreadySignedUp
		}
		return nil, err
	}
	s.log.Info().Str("activity_id", a.ID).Str("list_id", list.ID).Int("lidnr", memberID).Msg("member signed up")
	return signup, nil
}

// SignOff removes the signup of p from a list. Signing off without a signup is a no-op.
func (s *Service) SignOff(ctx context.Context, p acl.Principal, activityID, listID string, l i18n.Locale) error {
	if p.IsGuest() {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, i18n.Translate(l, i18n.MsgGuestSignup))
	}
	a, list, err := s.openList(ctx, p, activityID, listID)
	if err != nil {
		return err
	}
	existing, err := s.signups.FindByMember(ctx, list.ID, p.MemberID)
	if err != nil {
		return err
	}
	if existing == nil {
		return nil
	}
	if err := s.signups.Delete(ctx, existing.ID); err != nil {
		return err
	}
	s.log.Info().Str("activity_id", a.ID).Str("list_id", list.ID).Int("lidnr", p.MemberID).Msg("member signed off")
	return nil
}

// ExternalSignUp registers a non-member. Anonymous requests must pass the CAPTCHA.
func (s *Service) ExternalSignUp(ctx context.Context, p acl.Principal, activityID, listID string, in dto.ExternalSignupRequest, l i18n.Locale) (*entity.Signup, error) {
	if err := s.require(p, l, acl.ResourceSignup, acl.ActionExternalSignup, i18n.MsgNotAllowedExternalSignup); err != nil {
		return nil, err
	}
	a, list, err := s.openList(ctx, p, activityID, listID)
	if err != nil {
		return nil, err
	}
	if list.OnlyGEWIS {
		return nil, notAllowed(l, acl.ResourceSignup, acl.ActionExternalSignup, i18n.MsgNotAllowedExternalSignup)
	}
	if err := s.validator.Struct(in, l); err != nil {
		return nil, err
	}
	fieldValues, err := s.validator.SignupValues(list, in.Values, l)
	if err != nil {
		return nil, err
	}
	if p.IsGuest() {
		if err := s.verifyCaptcha(ctx, in.CaptchaID, in.CaptchaAnswer); err != nil {
			return nil, err
		}
	}
	signup := &entity.Signup{
		ID:           uuid.New().String(),
		SignupListID: list.ID,
		Kind:         entity.SignupExternal,
		FullName:     in.FullName,
		Email:        in.Email,
		Values:       fieldValues,
		CreatedAt:    s.now(),
	}
	if err := s.signups.Create(ctx, signup); err != nil {
		return nil, err
	}
	s.log.Info().Str("activity_id", a.ID).Str("list_id", list.ID).Msg("external signup")
	return signup, nil
}

// IssueCaptcha hands out a new challenge for anonymous external signups.
func (s *Service) IssueCaptcha(ctx context.Context) (*dto.CaptchaResponse, error) {
	if s.captcha == nil {
		return nil, domain.ErrCaptchaFailed
	}
	c, err := s.captcha.Issue(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.CaptchaResponse{ID: c.ID, Question: c.Question, ExpiresAt: c.ExpiresAt}, nil
}

func (s *Service) verifyCaptcha(ctx context.Context, id, answer string) error {
	if s.captcha == nil || id == "" || answer == "" {
		return domain.ErrCaptchaFailed
	}
	ok, err := s.captcha.Verify(ctx, id, answer)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrCaptchaFailed
	}
	return nil
}

// openList loads an approved, visible activity and a list whose signup window contains now.
func (s *Service) openList(ctx context.Context, p acl.Principal, activityID, listID string) (*entity.Activity, *entity.SignupList, error) {
	a, list, err := s.loadList(ctx, activityID, listID)
	if err != nil {
		return nil, nil, err
	}
	if a.Status != entity.StatusApproved || !s.visible(p, a) {
		return nil, nil, fmt.Errorf("activity %s: %w", activityID, domain.ErrNotFound)
	}
	if !list.IsOpen(s.now()) {
		return nil, nil, domain.ErrSignupClosed
	}
	return a, list, nil
}

// ListSignups returns the participants of a list. Principals allowed to view participants get
// every signup; others only the count, and only when the list displays it.
func (s *Service) ListSignups(ctx context.Context, p acl.Principal, activityID, listID string, l i18n.Locale) (*dto.SignupListParticipantsResponse, error) {
	a, list, err := s.loadList(ctx, activityID, listID)
	if err != nil {
		return nil, err
	}
	if !s.visible(p, a) {
		return nil, fmt.Errorf("activity %s: %w", activityID, domain.ErrNotFound)
	}
	out := &dto.SignupListParticipantsResponse{ListID: list.ID, Signups: []dto.SignupResponse{}}
	if !p.Can(s.acl, acl.ResourceActivity, acl.ActionViewParticipants) {
		if list.DisplaySubscribedNumber {
			n, err := s.signups.CountByList(ctx, list.ID)
			if err != nil {
				return nil, err
			}
			out.Count = &n
		}
		return out, nil
	}
	signups, names, err := s.participants(ctx, list.ID)
	if err != nil {
		return nil, err
	}
	n := len(signups)
	out.Count = &n
	for _, su := range signups {
		out.Signups = append(out.Signups, toSignupResponse(su, list, names, l))
	}
	return out, nil
}

// participants loads the signups of a list and the display names of the members among them.
func (s *Service) participants(ctx context.Context, listID string) ([]*entity.Signup, map[int]string, error) {
	signups, err := s.signups.ListByList(ctx, listID)
	if err != nil {
		return nil, nil, err
	}
	var lidnrs []int
	for _, su := range signups {
		if su.Kind == entity.SignupUser && su.MemberID != nil {
			lidnrs = append(lidnrs, *su.MemberID)
		}
	}
	names := map[int]string{}
	if len(lidnrs) > 0 && s.members != nil {
		members, err := s.members.GetByLidNrs(ctx, lidnrs)
		if err != nil {
			return nil, nil, err
		}
		for id, m := range members {
			names[id] = m.FullName()
		}
	}
	return signups, names, nil
}

func memberName(su *entity.Signup, names map[int]string) string {
	if su.MemberID == nil {
		return su.DisplayName("")
	}
	return su.DisplayName(names[*su.MemberID])
}

// displayValue renders a field answer in l (option values are translated, yes/no spelled out).
func displayValue(f *entity.SignupField, v entity.SignupFieldValue, l i18n.Locale) string {
	switch f.Type {
	case entity.FieldChoice:
		if v.OptionID == nil {
			return ""
		}
		if o := f.Option(*v.OptionID); o != nil {
			return o.Value.String(l)
		}
		return ""
	case entity.FieldYesNo:
		if v.Value == nil {
			return ""
		}
		return yesNoLabel(*v.Value == "1", l)
	}
	if v.Value == nil {
		return ""
	}
	return *v.Value
}
