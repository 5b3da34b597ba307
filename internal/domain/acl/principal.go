package acl

// Principal is the acting identity of a request. MemberID is the membership number (lidnr).
type Principal struct {
	MemberID int
	Role     Role
}

// Guest is the anonymous principal.
var Guest = Principal{Role: RoleGuest}

// IsGuest reports whether no member is authenticated.
func (p Principal) IsGuest() bool {
	return p.MemberID == 0 || p.Role == RoleGuest || p.Role == ""
}

// Can checks a permission for p against a.
func (p Principal) Can(a *ACL, resource, action string) bool {
	role := p.Role
	if role == "" {
		role = RoleGuest
	}
	return a.IsAllowed(role, resource, action)
}
