package activity

import (
	"github.com/gewis/gewisweb-api/internal/application/dto"
	domainactivity "github.com/gewis/gewisweb-api/internal/domain/activity"
	"github.com/gewis/gewisweb-api/internal/domain/entity"
	"github.com/gewis/gewisweb-api/internal/domain/i18n"
)

// ToResponse projects a with both languages side by side.
func ToResponse(a *entity.Activity) dto.ActivityResponse {
	out := dto.ActivityResponse{
		ID:                   a.ID,
		Name:                 a.Name.NL(),
		NameEn:               a.Name.EN(),
		Location:             a.Location.NL(),
		LocationEn:           a.Location.EN(),
		Costs:                a.Costs.NL(),
		CostsEn:              a.Costs.EN(),
		Description:          a.Description.NL(),
		DescriptionEn:        a.Description.EN(),
		BeginTime:            a.BeginTime,
		EndTime:              a.EndTime,
		SubscriptionDeadline: a.SubscriptionDeadline,
		CanSignUp:            a.CanSignUp,
		OnlyGEWIS:            a.OnlyGEWIS,
		Status:               a.Status.String(),
		Creator:              a.CreatorID,
		Approver:             a.ApproverID,
		Organ:                a.OrganID,
		SignupLists:          make([]dto.SignupListResponse, 0, len(a.SignupLists)),
	}
	for _, l := range a.SignupLists {
		lr := dto.SignupListResponse{
			ID:                      l.ID,
			Name:                    l.Name.NL(),
			NameEn:                  l.Name.EN(),
			OpenDate:                l.OpenDate,
			CloseDate:               l.CloseDate,
			OnlyGEWIS:               l.OnlyGEWIS,
			DisplaySubscribedNumber: l.DisplaySubscribedNumber,
			Fields:                  make([]dto.SignupFieldResponse, 0, len(l.Fields)),
		}
		for _, f := range l.Fields {
			fr := dto.SignupFieldResponse{
				ID:           f.ID,
				Name:         f.Name.NL(),
				NameEn:       f.Name.EN(),
				Type:         int(f.Type),
				MinimumValue: f.MinimumValue,
				MaximumValue: f.MaximumValue,
			}
			for _, o := range f.Options {
				fr.Options = append(fr.Options, dto.SignupOptionResponse{ID: o.ID, Value: o.Value.NL(), ValueEn: o.Value.EN()})
			}
			lr.Fields = append(lr.Fields, fr)
		}
		out.SignupLists = append(out.SignupLists, lr)
	}
	return out
}

// ToTranslationResponse renders a single-language projection.
func ToTranslationResponse(t *domainactivity.Translation) dto.ActivityTranslationResponse {
	out := dto.ActivityTranslationResponse{
		ID:                   t.ID,
		Locale:               t.Locale.String(),
		Name:                 t.Name,
		Location:             t.Location,
		Costs:                t.Costs,
		Description:          t.Description,
		BeginTime:            t.BeginTime,
		EndTime:              t.EndTime,
		SubscriptionDeadline: t.SubscriptionDeadline,
		CanSignUp:            t.CanSignUp,
		OnlyGEWIS:            t.OnlyGEWIS,
		Status:               t.Status.String(),
		Organ:                t.OrganID,
		SignupLists:          make([]dto.SignupListTranslationResponse, 0, len(t.SignupLists)),
	}
	for _, l := range t.SignupLists {
		lr := dto.SignupListTranslationResponse{
			ID:        l.ID,
			Name:      l.Name,
			OpenDate:  l.OpenDate,
			CloseDate: l.CloseDate,
			OnlyGEWIS: l.OnlyGEWIS,
			Fields:    make([]dto.FieldTranslationResponse, 0, len(l.Fields)),
		}
		for _, f := range l.Fields {
			fr := dto.FieldTranslationResponse{
				ID:           f.ID,
				Name:         f.Name,
				Type:         int(f.Type),
				MinimumValue: f.MinimumValue,
				MaximumValue: f.MaximumValue,
			}
			for _, o := range f.Options {
				fr.Options = append(fr.Options, dto.OptionTranslationResponse{ID: o.ID, Value: o.Value})
			}
			lr.Fields = append(lr.Fields, fr)
		}
		out.SignupLists = append(out.SignupLists, lr)
	}
	return out
}

// ToTranslationResponses maps a list of projections.
func ToTranslationResponses(list []*domainactivity.Translation) []dto.ActivityTranslationResponse {
	out := make([]dto.ActivityTranslationResponse, 0, len(list))
	for _, t := range list {
		out = append(out, ToTranslationResponse(t))
	}
	return out
}

func toSignupResponse(su *entity.Signup, list *entity.SignupList, names map[int]string, l i18n.Locale) dto.SignupResponse {
	r := dto.SignupResponse{
		ID:        su.ID,
		Kind:      string(su.Kind),
		LidNr:     su.MemberID,
		FullName:  memberName(su, names),
		Values:    map[string]string{},
		CreatedAt: su.CreatedAt,
	}
	for _, v := range su.Values {
		if f := list.Field(v.FieldID); f != nil {
			r.Values[f.ID] = displayValue(f, v, l)
		}
	}
	return r
}

func valuesByField(values []entity.SignupFieldValue) map[string]entity.SignupFieldValue {
	out := make(map[string]entity.SignupFieldValue, len(values))
	for _, v := range values {
		out[v.FieldID] = v
	}
	return out
}

// ToSignupResponse projects a freshly stored signup. Values are the raw answers; choice
// fields carry the option id.
func ToSignupResponse(su *entity.Signup) dto.SignupResponse {
	r := dto.SignupResponse{
		ID:        su.ID,
		Kind:      string(su.Kind),
		LidNr:     su.MemberID,
		FullName:  su.FullName,
		Values:    make(map[string]string, len(su.Values)),
		CreatedAt: su.CreatedAt,
	}
	for _, v := range su.Values {
		switch {
		case v.OptionID != nil:
			r.Values[v.FieldID] = *v.OptionID
		case v.Value != nil:
			r.Values[v.FieldID] = *v.Value
		}
	}
	return r
}
