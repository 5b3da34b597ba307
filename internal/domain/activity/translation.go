// Package activity holds read-side projections of the activity aggregate.
package activity

import (
	"time"

	"github.com/gewis/gewisweb-api/internal/domain/entity"
	"github.com/gewis/gewisweb-api/internal/domain/i18n"
)

// Translation is a single-language snapshot of an activity, its signup lists, fields and options.
// It shares no memory with the source aggregate.
type Translation struct {
	ID                   string
	Locale               i18n.Locale
	Name                 string
	Location             string
	Costs                string
	Description          string
	BeginTime            time.Time
	EndTime              time.Time
	SubscriptionDeadline *time.Time
	CanSignUp            bool
	OnlyGEWIS            bool
	Status               entity.ActivityStatus
	CreatorID            int
	OrganID              *string
	SignupLists          []SignupListTranslation
}

// SignupListTranslation is the projected signup list.
type SignupListTranslation struct {
	ID                      string
	Name                    string
	OpenDate                time.Time
	CloseDate               time.Time
	OnlyGEWIS               bool
	DisplaySubscribedNumber bool
	Fields                  []FieldTranslation
}

// FieldTranslation is the projected signup field.
type FieldTranslation struct {
	ID           string
	Name         string
	Type         entity.FieldType
	MinimumValue *int
	MaximumValue *int
	Options      []OptionTranslation
}

// OptionTranslation is the projected choice option.
type OptionTranslation struct {
	ID    string
	Value string
}

// ResolveLocale picks the language of the whole projection: preferred when the activity name
// exists in it, otherwise the other language.
func ResolveLocale(a *entity.Activity, preferred i18n.Locale) i18n.Locale {
	if a.Name.Has(preferred) {
		return preferred
	}
	return preferred.Other()
}

// Translate projects a onto one language. The language is decided once from the activity
// name and applied unchanged to every nested list, field and option.
func Translate(a *entity.Activity, preferred i18n.Locale) *Translation {
	if a == nil {
		return nil
	}
	l := ResolveLocale(a, preferred)
	t := &Translation{
		ID:          a.ID,
		Locale:      l,
		Name:        exact(a.Name, l),
		Location:    exact(a.Location, l),
		Costs:       exact(a.Costs, l),
		Description: exact(a.Description, l),
		BeginTime:   a.BeginTime,
		EndTime:     a.EndTime,
		CanSignUp:   a.CanSignUp,
		OnlyGEWIS:   a.OnlyGEWIS,
		Status:      a.Status,
		CreatorID:   a.CreatorID,
		OrganID:     copyString(a.OrganID),
	}
	if a.SubscriptionDeadline != nil {
		d := *a.SubscriptionDeadline
		t.SubscriptionDeadline = &d
	}
	t.SignupLists = make([]SignupListTranslation, 0, len(a.SignupLists))
	for _, list := range a.SignupLists {
		t.SignupLists = append(t.SignupLists, translateList(list, l))
	}
	return t
}

func translateList(list *entity.SignupList, l i18n.Locale) SignupListTranslation {
	out := SignupListTranslation{
		ID:                      list.ID,
		Name:                    exact(list.Name, l),
		OpenDate:                list.OpenDate,
		CloseDate:               list.CloseDate,
		OnlyGEWIS:               list.OnlyGEWIS,
		DisplaySubscribedNumber: list.DisplaySubscribedNumber,
		Fields:                  make([]FieldTranslation, 0, len(list.Fields)),
	}
	for _, f := range list.Fields {
		ft := FieldTranslation{
			ID:           f.ID,
			Name:         exact(f.Name, l),
			Type:         f.Type,
			MinimumValue: copyInt(f.MinimumValue),
			MaximumValue: copyInt(f.MaximumValue),
		}
		for _, o := range f.Options {
			ft.Options = append(ft.Options, OptionTranslation{ID: o.ID, Value: exact(o.Value, l)})
		}
		out.Fields = append(out.Fields, ft)
	}
	return out
}

func exact(t i18n.Text, l i18n.Locale) string {
	v, err := t.Exact(l)
	if err != nil || v == nil {
		return ""
	}
	return *v
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	n := *v
	return &n
}

func copyString(v *string) *string {
	if v == nil {
		return nil
	}
	s := *v
	return &s
}
