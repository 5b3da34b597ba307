package activity

import (
	"context"
	"fmt"

	"github.com/gewis/gewisweb-api/internal/application/dto"
	"github.com/gewis/gewisweb-api/internal/domain"
	"github.com/gewis/gewisweb-api/internal/domain/acl"
	domainactivity "github.com/gewis/gewisweb-api/internal/domain/activity"
	"github.com/gewis/gewisweb-api/internal/domain/entity"
	"github.com/gewis/gewisweb-api/internal/domain/i18n"
)

var yesNoLabels = map[i18n.Locale][2]string{
	i18n.Dutch:   {"Ja", "Nee"},
	i18n.English: {"Yes", "No"},
}

func yesNoLabel(yes bool, l i18n.Locale) string {
	labels, ok := yesNoLabels[l]
	if !ok {
		labels = yesNoLabels[i18n.English]
	}
	if yes {
		return labels[0]
	}
	return labels[1]
}

// SignupForm describes the inputs of the signup form of a list in l. External signups get the
// fullName and email inputs in front of the list fields.
func (s *Service) SignupForm(ctx context.Context, p acl.Principal, activityID, listID string, external bool, l i18n.Locale) (*dto.SignupFormResponse, error) {
	a, list, err := s.loadList(ctx, activityID, listID)
	if err != nil {
		return nil, err
	}
	if !s.visible(p, a) {
		return nil, fmt.Errorf("activity %s: %w", activityID, domain.ErrNotFound)
	}
	// nested names follow the language chosen for the activity as a whole
	t := domainactivity.Translate(a, l)
	var lt *domainactivity.SignupListTranslation
	for i := range t.SignupLists {
		if t.SignupLists[i].ID == list.ID {
			lt = &t.SignupLists[i]
		}
	}
	if lt == nil {
		return nil, fmt.Errorf("signup list %s: %w", listID, domain.ErrNotFound)
	}
	out := &dto.SignupFormResponse{ListID: list.ID, Name: lt.Name}
	if external {
		labels := externalLabels[t.Locale]
		out.Elements = append(out.Elements,
			dto.FormElement{Name: "fullName", Label: labels[0], Type: "text", Required: true, Max: intPtr(100)},
			dto.FormElement{Name: "email", Label: labels[1], Type: "email", Required: true, Max: intPtr(100)},
		)
	}
	for _, ft := range lt.Fields {
		out.Elements = append(out.Elements, formElement(ft, t.Locale))
	}
	return out, nil
}

var externalLabels = map[i18n.Locale][2]string{
	i18n.Dutch:   {"Volledige naam", "E-mailadres"},
	i18n.English: {"Full name", "Email address"},
}

func formElement(f domainactivity.FieldTranslation, l i18n.Locale) dto.FormElement {
	el := dto.FormElement{Name: "values." + f.ID, Label: f.Name, Required: true}
	switch f.Type {
	case entity.FieldText:
		el.Type = "text"
	case entity.FieldYesNo:
		el.Type = "radio"
		el.Options = []dto.FormOption{
			{Value: "1", Label: yesNoLabel(true, l)},
			{Value: "0", Label: yesNoLabel(false, l)},
		}
	case entity.FieldNumber:
		el.Type = "number"
		el.Min = f.MinimumValue
		el.Max = f.MaximumValue
		el.Step = intPtr(1)
	case entity.FieldChoice:
		el.Type = "select"
		for _, o := range f.Options {
			el.Options = append(el.Options, dto.FormOption{Value: o.ID, Label: o.Value})
		}
	}
	return el
}

func intPtr(v int) *int { return &v }
