package dto

import "time"

// CreateActivityRequest is the activity form. At least one of the Dutch or English field sets
// must be filled (name, location and costs unless CostsUnknown).
type CreateActivityRequest struct {
	Name                 string              `json:"name" validate:"max=100"`
	NameEn               string              `json:"nameEn" validate:"max=100"`
	Location             string              `json:"location" validate:"max=100"`
	LocationEn           string              `json:"locationEn" validate:"max=100"`
	Costs                string              `json:"costs" validate:"max=100"`
	CostsEn              string              `json:"costsEn" validate:"max=100"`
	CostsUnknown         bool                `json:"costsUnknown"`
	Description          string              `json:"description" validate:"max=100000"`
	DescriptionEn        string              `json:"descriptionEn" validate:"max=100000"`
	BeginTime            string              `json:"beginTime" validate:"required,datetime=2006-01-02 15:04"`
	EndTime              string              `json:"endTime" validate:"required,datetime=2006-01-02 15:04"`
	SubscriptionDeadline string              `json:"subscriptionDeadline" validate:"omitempty,datetime=2006-01-02 15:04"`
	CanSignUp            bool                `json:"canSignUp"`
	Organ                string              `json:"organ" validate:"max=20"`
	SignupLists          []SignupListRequest `json:"signupLists" validate:"dive"`
}

// SignupListRequest is one signup list fieldset of the activity form.
type SignupListRequest struct {
	Name                    string               `json:"name" validate:"required_without=NameEn,max=100"`
	NameEn                  string               `json:"nameEn" validate:"max=100"`
	OpenDate                string               `json:"openDate" validate:"required,datetime=2006-01-02 15:04"`
	CloseDate               string               `json:"closeDate" validate:"required,datetime=2006-01-02 15:04"`
	OnlyGEWIS               bool                 `json:"onlyGEWIS"`
	DisplaySubscribedNumber bool                 `json:"displaySubscribedNumber"`
	Fields                  []SignupFieldRequest `json:"fields" validate:"dive"`
}

// SignupFieldRequest is one signup field fieldset. Options are comma separated.
type SignupFieldRequest struct {
	Name         string `json:"name" validate:"required_without=NameEn,max=100"`
	NameEn       string `json:"nameEn" validate:"max=100"`
	Type         int    `json:"type" validate:"min=0,max=3"`
	MinimumValue *int   `json:"minimumValue"`
	MaximumValue *int   `json:"maximumValue"`
	Options      string `json:"options" validate:"max=1000"`
	OptionsEn    string `json:"optionsEn" validate:"max=1000"`
}

// ActivityResponse is the bilingual projection of an activity (kiosk API and management views).
type ActivityResponse struct {
	ID                   string               `json:"id"`
	Name                 *string              `json:"name"`
	NameEn               *string              `json:"nameEn"`
	Location             *string              `json:"location"`
	LocationEn           *string              `json:"locationEn"`
	Costs                *string              `json:"costs"`
	CostsEn              *string              `json:"costsEn"`
	Description          *string              `json:"description"`
	DescriptionEn        *string              `json:"descriptionEn"`
	BeginTime            time.Time            `json:"beginTime"`
	EndTime              time.Time            `json:"endTime"`
	SubscriptionDeadline *time.Time           `json:"subscriptionDeadline,omitempty"`
	CanSignUp            bool                 `json:"canSignUp"`
	OnlyGEWIS            bool                 `json:"onlyGEWIS"`
	Status               string               `json:"status"`
	Creator              int                  `json:"creator"`
	Approver             *int                 `json:"approver,omitempty"`
	Organ                *string              `json:"organ,omitempty"`
	SignupLists          []SignupListResponse `json:"signupLists"`
}

// SignupListResponse is the bilingual projection of a signup list.
type SignupListResponse struct {
	ID                      string                `json:"id"`
	Name                    *string               `json:"name"`
	NameEn                  *string               `json:"nameEn"`
	OpenDate                time.Time             `json:"openDate"`
	CloseDate               time.Time             `json:"closeDate"`
	OnlyGEWIS               bool                  `json:"onlyGEWIS"`
	DisplaySubscribedNumber bool                  `json:"displaySubscribedNumber"`
	Fields                  []SignupFieldResponse `json:"fields"`
}

// SignupFieldResponse is the bilingual projection of a signup field.
type SignupFieldResponse struct {
	ID           string                 `json:"id"`
	Name         *string                `json:"name"`
	NameEn       *string                `json:"nameEn"`
	Type         int                    `json:"type"`
	MinimumValue *int                   `json:"minimumValue,omitempty"`
	MaximumValue *int                   `json:"maximumValue,omitempty"`
	Options      []SignupOptionResponse `json:"options,omitempty"`
}

// SignupOptionResponse is the bilingual projection of a choice option.
type SignupOptionResponse struct {
	ID      string  `json:"id"`
	Value   *string `json:"value"`
	ValueEn *string `json:"valueEn"`
}

// ActivityTranslationResponse is the single-language view of an activity.
type ActivityTranslationResponse struct {
	ID                   string                          `json:"id"`
	Locale               string                          `json:"locale"`
	Name                 string                          `json:"name"`
	Location             string                          `json:"location"`
	Costs                string                          `json:"costs"`
	Description          string                          `json:"description"`
	BeginTime            time.Time                       `json:"beginTime"`
	EndTime              time.Time                       `json:"endTime"`
	SubscriptionDeadline *time.Time                      `json:"subscriptionDeadline,omitempty"`
	CanSignUp            bool                            `json:"canSignUp"`
	OnlyGEWIS            bool                            `json:"onlyGEWIS"`
	Status               string                          `json:"status"`
	Organ                *string                         `json:"organ,omitempty"`
	SignupLists          []SignupListTranslationResponse `json:"signupLists"`
}

// SignupListTranslationResponse is a translated signup list.
type SignupListTranslationResponse struct {
	ID        string                     `json:"id"`
	Name      string                     `json:"name"`
	OpenDate  time.Time                  `json:"openDate"`
	CloseDate time.Time                  `json:"closeDate"`
	OnlyGEWIS bool                       `json:"onlyGEWIS"`
	Fields    []FieldTranslationResponse `json:"fields"`
}

// FieldTranslationResponse is a translated signup field.
type FieldTranslationResponse struct {
	ID           string                      `json:"id"`
	Name         string                      `json:"name"`
	Type         int                         `json:"type"`
	MinimumValue *int                        `json:"minimumValue,omitempty"`
	MaximumValue *int                        `json:"maximumValue,omitempty"`
	Options      []OptionTranslationResponse `json:"options,omitempty"`
}

// OptionTranslationResponse is a translated choice option.
type OptionTranslationResponse struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}
