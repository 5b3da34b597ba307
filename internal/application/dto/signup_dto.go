package dto

import "time"

// SignupRequest answers the fields of a list: field ID -> value. Choice fields take the option ID,
// yes/no fields "1" or "0".
type SignupRequest struct {
	Values map[string]string `json:"values"`
}

// ExternalSignupRequest is a signup by a non-member. The CAPTCHA is required for anonymous requests.
type ExternalSignupRequest struct {
	FullName      string            `json:"fullName" validate:"required,min=1,max=100"`
	Email         string            `json:"email" validate:"required,min=1,max=100,email"`
	Values        map[string]string `json:"values"`
	CaptchaID     string            `json:"captchaId"`
	CaptchaAnswer string            `json:"captchaAnswer"`
}

// SignupResponse is one participant.
type SignupResponse struct {
	ID        string            `json:"id"`
	Kind      string            `json:"kind"`
	LidNr     *int              `json:"lidnr,omitempty"`
	FullName  string            `json:"fullName"`
	Values    map[string]string `json:"values"`
	CreatedAt time.Time         `json:"createdAt"`
}

// SignupListParticipantsResponse lists participants; Signups is empty when only the count may be shown.
type SignupListParticipantsResponse struct {
	ListID  string           `json:"listId"`
	Count   *int             `json:"count,omitempty"`
	Signups []SignupResponse `json:"signups"`
}

// FormElement describes one input of the signup form.
type FormElement struct {
	Name     string       `json:"name"`
	Label    string       `json:"label"`
	Type     string       `json:"type"`
	Required bool         `json:"required"`
	Min      *int         `json:"min,omitempty"`
	Max      *int         `json:"max,omitempty"`
	Step     *int         `json:"step,omitempty"`
	Options  []FormOption `json:"options,omitempty"`
}

// FormOption is a selectable value of a radio or select element.
type FormOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// SignupFormResponse is the form rendered for one signup list.
type SignupFormResponse struct {
	ListID   string        `json:"listId"`
	Name     string        `json:"name"`
	Elements []FormElement `json:"elements"`
}

// CaptchaResponse is an issued CAPTCHA challenge; the client renders Question.
type CaptchaResponse struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	ExpiresAt time.Time `json:"expiresAt"`
}
