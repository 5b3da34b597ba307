package dto

// LoginRequest authenticates a member.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// MemberResponse is the public data of a member.
type MemberResponse struct {
	LidNr    int    `json:"lidnr"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

// LoginResponse carries the bearer token.
type LoginResponse struct {
	Token  string         `json:"token"`
	Member MemberResponse `json:"member"`
}

// OrganResponse is an organ reconstructed from the decision ledger.
type OrganResponse struct {
	Abbr           string                `json:"abbr"`
	Name           string                `json:"name"`
	Type           string                `json:"type"`
	FoundationDate string                `json:"foundationDate"`
	AbrogationDate *string               `json:"abrogationDate,omitempty"`
	Members        []OrganMemberResponse `json:"members,omitempty"`
}

// OrganMemberResponse is a current installation.
type OrganMemberResponse struct {
	LidNr    int    `json:"lidnr"`
	FullName string `json:"fullName"`
	Function string `json:"function"`
}
