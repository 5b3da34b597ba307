package entity

import (
	"time"

	"github.com/gewis/gewisweb-api/internal/domain/acl"
)

// Member is a (former) member of the association, identified by membership number (lidnr).
type Member struct {
	LidNr        int
	Email        string
	PasswordHash string // bcrypt hash
	Initials     string
	FirstName    string
	MiddleName   string
	LastName     string
	Role         acl.Role
	Expiration   time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName joins first, middle and last name.
func (m *Member) FullName() string {
	name := m.FirstName
	if m.MiddleName != "" {
		name += " " + m.MiddleName
	}
	if m.LastName != "" {
		name += " " + m.LastName
	}
	return name
}

// IsActive reports whether the membership has not expired at now.
func (m *Member) IsActive(now time.Time) bool {
	return now.Before(m.Expiration)
}
