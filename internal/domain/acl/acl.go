// Package acl holds the static role/resource/action table used by the application services.
package acl

// Role of a principal. Roles inherit the permissions of their parent.
type Role string

const (
	RoleGuest        Role = "guest"
	RoleUser         Role = "user"
	RoleActiveMember Role = "active_member"
	RoleCompanyAdmin Role = "company_admin"
	RoleAdmin        Role = "admin"
)

// Resource names.
const (
	ResourceActivity = "activity"
	ResourceSignup   = "signup"
	ResourceCompany  = "company"
	ResourcePackage  = "package"
	ResourceOrgan    = "organ"
)

// Actions.
const (
	ActionCreate           = "create"
	ActionApprove          = "approve"
	ActionDisapprove       = "disapprove"
	ActionReset            = "reset"
	ActionView             = "view"
	ActionViewUnapproved   = "view_unapproved"
	ActionViewApproved     = "view_approved"
	ActionViewDisapproved  = "view_disapproved"
	ActionViewUpcoming     = "view_upcoming"
	ActionViewParticipants = "view_participants"
	ActionExport           = "export"
	ActionSignup           = "signup"
	ActionExternalSignup   = "external_signup"
	ActionEdit             = "edit"
	ActionViewHidden       = "view_hidden"
	ActionSweep            = "sweep"
)

var parents = map[Role]Role{
	RoleUser:         RoleGuest,
	RoleActiveMember: RoleUser,
	RoleCompanyAdmin: RoleUser,
	RoleAdmin:        RoleActiveMember,
}

// ACL is an allow-list; anything not granted is denied.
type ACL struct {
	rules map[Role]map[string]map[string]struct{}
}

// New returns an empty ACL.
func New() *ACL {
	return &ACL{rules: make(map[Role]map[string]map[string]struct{})}
}

// Allow grants actions on resource to role (and every role inheriting from it).
func (a *ACL) Allow(role Role, resource string, actions ...string) *ACL {
	res, ok := a.rules[role]
	if !ok {
		res = make(map[string]map[string]struct{})
		a.rules[role] = res
	}
	acts, ok := res[resource]
	if !ok {
		acts = make(map[string]struct{})
		res[resource] = acts
	}
	for _, act := range actions {
		acts[act] = struct{}{}
	}
	return a
}

// IsAllowed walks the role chain looking for a grant.
func (a *ACL) IsAllowed(role Role, resource, action string) bool {
	for r, ok := role, true; ok; r, ok = parents[r] {
		if _, granted := a.rules[r][resource][action]; granted {
			return true
		}
	}
	return false
}

// Default is the association's permission table.
func Default() *ACL {
	return New().
		Allow(RoleGuest, ResourceActivity, ActionView, ActionViewUpcoming).
		Allow(RoleGuest, ResourceSignup, ActionExternalSignup).
		Allow(RoleGuest, ResourceCompany, ActionView).
		Allow(RoleGuest, ResourceOrgan, ActionView).
		Allow(RoleUser, ResourceSignup, ActionSignup).
		Allow(RoleActiveMember, ResourceActivity, ActionCreate, ActionViewParticipants).
		Allow(RoleCompanyAdmin, ResourceCompany, ActionEdit, ActionViewHidden).
		Allow(RoleCompanyAdmin, ResourcePackage, ActionEdit, ActionSweep).
		Allow(RoleAdmin, ResourceActivity,
			ActionApprove, ActionDisapprove, ActionReset,
			ActionViewUnapproved, ActionViewApproved, ActionViewDisapproved,
			ActionExport,
		).
		Allow(RoleAdmin, ResourceCompany, ActionEdit, ActionViewHidden).
		Allow(RoleAdmin, ResourcePackage, ActionEdit, ActionSweep)
}
