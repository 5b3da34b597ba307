package activity

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gewis/gewisweb-api/internal/application/dto"
	"github.com/gewis/gewisweb-api/internal/application/validation"
	"github.com/gewis/gewisweb-api/internal/domain/acl"
	"github.com/gewis/gewisweb-api/internal/domain/entity"
	"github.com/gewis/gewisweb-api/internal/domain/i18n"
	"github.com/gewis/gewisweb-api/internal/domain/repository"
)

// Create validates in and persists a new activity in TO_APPROVE with p as creator.
// Lists, fields and options are stored in the same transaction. Validation failures are
// returned as validation.Errors.
func (s *Service) Create(ctx context.Context, p acl.Principal, in dto.CreateActivityRequest, l i18n.Locale) (*entity.Activity, error) {
	if err := s.require(p, l, acl.ResourceActivity, acl.ActionCreate, i18n.MsgNotAllowedCreateActivity); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(in, l); err != nil {
		return nil, err
	}

	now := s.now()
	a := s.buildActivity(in, p.MemberID, now)
	if err := s.tx.RunActivity(ctx, func(activities repository.ActivityRepository, _ repository.SignupRepository) error {
		return activities.Create(ctx, a)
	}); err != nil {
		return nil, err
	}
	s.log.Info().Str("activity_id", a.ID).Int("lidnr", p.MemberID).Msg("activity created")
	s.notifyCreated(ctx, a)
	return a, nil
}

func (s *Service) notifyCreated(ctx context.Context, a *entity.Activity) {
	if s.notifier == nil {
		return
	}
	var creator *entity.Member
	if s.members != nil {
		m, err := s.members.GetByLidNr(ctx, a.CreatorID)
		if err != nil {
			s.log.Warn().Err(err).Int("lidnr", a.CreatorID).Msg("load activity creator")
		}
		creator = m
	}
	if err := s.notifier.ActivityCreated(ctx, a, creator); err != nil {
		s.log.Error().Err(err).Str("activity_id", a.ID).Msg("activity created notification failed")
	}
}

// buildActivity maps the validated form onto a new aggregate.
func (s *Service) buildActivity(in dto.CreateActivityRequest, creatorID int, now time.Time) *entity.Activity {
	begin, _ := validation.ParseDateTime(in.BeginTime, s.loc)
	end, _ := validation.ParseDateTime(in.EndTime, s.loc)
	costs := i18n.FromStrings(in.Costs, in.CostsEn)
	if in.CostsUnknown {
		costs = i18n.Text{}
	}
	a := &entity.Activity{
		ID:          uuid.New().String(),
		Name:        i18n.FromStrings(in.Name, in.NameEn),
		Location:    i18n.FromStrings(in.Location, in.LocationEn),
		Costs:       costs,
		Description: i18n.FromStrings(in.Description, in.DescriptionEn),
		BeginTime:   begin,
		EndTime:     end,
		CanSignUp:   in.CanSignUp,
		// every new activity is members-only until a policy for public activities exists
		OnlyGEWIS: true,
		Status:    entity.StatusToApprove,
		CreatorID: creatorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.SubscriptionDeadline != "" {
		if d, ok := validation.ParseDateTime(in.SubscriptionDeadline, s.loc); ok {
			a.SubscriptionDeadline = &d
		}
	}
	if organ := strings.TrimSpace(in.Organ); organ != "" {
		a.OrganID = &organ
	}
	for _, lr := range in.SignupLists {
		a.SignupLists = append(a.SignupLists, s.buildList(a.ID, lr))
	}
	return a
}

func (s *Service) buildList(activityID string, in dto.SignupListRequest) *entity.SignupList {
	open, _ := validation.ParseDateTime(in.OpenDate, s.loc)
	closeAt, _ := validation.ParseDateTime(in.CloseDate, s.loc)
	list := &entity.SignupList{
		ID:                      uuid.New().String(),
		ActivityID:              activityID,
		Name:                    i18n.FromStrings(in.Name, in.NameEn),
		OpenDate:                open,
		CloseDate:               closeAt,
		OnlyGEWIS:               in.OnlyGEWIS,
		DisplaySubscribedNumber: in.DisplaySubscribedNumber,
	}
	for i, fr := range in.Fields {
		list.Fields = append(list.Fields, buildField(list.ID, i, fr))
	}
	return list
}

func buildField(listID string, position int, in dto.SignupFieldRequest) *entity.SignupField {
	f := &entity.SignupField{
		ID:           uuid.New().String(),
		SignupListID: listID,
		Position:     position,
		Name:         i18n.FromStrings(in.Name, in.NameEn),
		Type:         entity.FieldType(in.Type),
	}
	switch f.Type {
	case entity.FieldNumber:
		f.MinimumValue = in.MinimumValue
		f.MaximumValue = in.MaximumValue
	case entity.FieldChoice:
		f.Options = buildOptions(f.ID, in.Options, in.OptionsEn)
	}
	return f
}

// buildOptions pairs the comma separated Dutch and English options by position.
func buildOptions(fieldID, nl, en string) []*entity.SignupOption {
	nlOpts := validation.SplitOptions(nl)
	enOpts := validation.SplitOptions(en)
	n := max(len(nlOpts), len(enOpts))
	out := make([]*entity.SignupOption, 0, n)
	for i := 0; i < n; i++ {
		var nlv, env string
		if i < len(nlOpts) {
			nlv = nlOpts[i]
		}
		if i < len(enOpts) {
			env = enOpts[i]
		}
		out = append(out, &entity.SignupOption{
			ID:       uuid.New().String(),
			FieldID:  fieldID,
			Position: i,
			Value:    i18n.FromStrings(nlv, env),
		})
	}
	return out
}
