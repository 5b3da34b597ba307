package entity

import "time"

// SignupKind discriminates member and external signups.
type SignupKind string

const (
	SignupUser     SignupKind = "user"
	SignupExternal SignupKind = "external"
)

// Signup is one registration on a SignupList. Exactly one of MemberID (user) or
// FullName+Email (external) is meaningful, depending on Kind.
// At most one user signup exists per (SignupListID, MemberID); the schema enforces it.
type Signup struct {
	ID           string
	SignupListID string
	Kind         SignupKind
	MemberID     *int
	FullName     string
	Email        string
	Values       []SignupFieldValue
	CreatedAt    time.Time
}

// DisplayName returns the name shown in participant listings.
func (s *Signup) DisplayName(memberName string) string {
	switch s.Kind {
	case SignupExternal:
		return s.FullName
	case SignupUser:
		return memberName
	}
	return ""
}

// SignupFieldValue answers one SignupField: Value for text/yes-no/number, OptionID for choice.
type SignupFieldValue struct {
	FieldID  string
	Value    *string
	OptionID *string
}
