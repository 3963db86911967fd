// Package authorization defines admin roles and the permission resources they act on.
package authorization

import "strings"

type UserRole string

const (
	RoleUser       UserRole = "USER"
	RoleAdmin      UserRole = "ADMIN"
	RoleSuperAdmin UserRole = "SUPER_ADMIN"
)

func (r UserRole) String() string {
	return string(r)
}

// Subject is the casbin subject for the role.
func (r UserRole) Subject() string {
	return strings.ToLower(string(r))
}

func (r UserRole) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// IsAdmin reports whether the role may manage users and view metrics.
func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// ParseUserRole falls back to RoleUser for unknown values.
func ParseUserRole(s string) UserRole {
	role := UserRole(strings.ToUpper(strings.TrimSpace(s)))
	if role.IsValid() {
		return role
	}
	return RoleUser
}

// Permission resources and actions.
const (
	ResourceExchangeRates = "exchange_rates"
	ResourceFAQs          = "faqs"
	ResourceTestimonials  = "testimonials"
	ResourceUsers         = "users"
	ResourceMetrics       = "metrics"

	ActionRead  = "read"
	ActionWrite = "write"
)
