package entity

import (
	"time"

	"github.com/gewis/gewisweb-api/internal/domain/i18n"
	"github.com/gewis/gewisweb-api/internal/domain/period"
)

// SignupList is a named, time-windowed registration sheet attached to an Activity.
type SignupList struct {
	ID                      string
	ActivityID              string
	Name                    i18n.Text
	OpenDate                time.Time
	CloseDate               time.Time
	OnlyGEWIS               bool
	DisplaySubscribedNumber bool
	Fields                  []*SignupField
}

// Window returns [OpenDate, CloseDate).
func (l *SignupList) Window() period.Window {
	return period.New(l.OpenDate, l.CloseDate)
}

// IsOpen reports whether signing up is allowed at now.
func (l *SignupList) IsOpen(now time.Time) bool {
	return l.Window().Contains(now)
}

// Field returns the field with id, or nil.
func (l *SignupList) Field(id string) *SignupField {
	for _, f := range l.Fields {
		if f.ID == id {
			return f
		}
	}
	return nil
}

// FieldType of a signup field (stored as its numeric value).
type FieldType int

const (
	FieldText   FieldType = 0
	FieldYesNo  FieldType = 1
	FieldNumber FieldType = 2
	FieldChoice FieldType = 3
)

// Valid reports whether t is one of the four known types.
func (t FieldType) Valid() bool {
	return t >= FieldText && t <= FieldChoice
}

func (t FieldType) String() string {
	switch t {
	case FieldText:
		return "text"
	case FieldYesNo:
		return "yes_no"
	case FieldNumber:
		return "number"
	case FieldChoice:
		return "choice"
	}
	return "unknown"
}

// SignupField is one typed question on a SignupList.
// MinimumValue/MaximumValue only apply to FieldNumber, Options only to FieldChoice.
type SignupField struct {
	ID           string
	SignupListID string
	Position     int
	Name         i18n.Text
	Type         FieldType
	MinimumValue *int
	MaximumValue *int
	Options      []*SignupOption
}

// Option returns the option with id, or nil.
func (f *SignupField) Option(id string) *SignupOption {
	for _, o := range f.Options {
		if o.ID == id {
			return o
		}
	}
	return nil
}

// SignupOption is one selectable value of a Choice field.
type SignupOption struct {
	ID       string
	FieldID  string
	Position int
	Value    i18n.Text
}
