package permission

import (
	"fmt"

	"github.com/avestaexchange/avesta/internal/shared/authorization"
)

var (
	roleAdmin      = authorization.RoleAdmin.Subject()
	roleSuperAdmin = authorization.RoleSuperAdmin.Subject()
)

// defaultPolicies are the back-office grants. super_admin inherits admin.
var defaultPolicies = [][]string{
	{roleAdmin, authorization.ResourceExchangeRates, authorization.ActionRead},
	{roleAdmin, authorization.ResourceExchangeRates, authorization.ActionWrite},
	{roleAdmin, authorization.ResourceFAQs, authorization.ActionRead},
	{roleAdmin, authorization.ResourceFAQs, authorization.ActionWrite},
	{roleAdmin, authorization.ResourceTestimonials, authorization.ActionRead},
	{roleAdmin, authorization.ResourceTestimonials, authorization.ActionWrite},
	{roleAdmin, authorization.ResourceMetrics, authorization.ActionRead},

	{roleSuperAdmin, authorization.ResourceUsers, authorization.ActionRead},
	{roleSuperAdmin, authorization.ResourceUsers, authorization.ActionWrite},
}

// InitDefaultPolicies adds any missing default grants. Existing rules are left alone.
func (e *Enforcer) InitDefaultPolicies() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, p := range defaultPolicies {
		if _, err := e.enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w", p[0], p[1], p[2], err)
		}
	}
	if _, err := e.enforcer.AddGroupingPolicy(roleSuperAdmin, roleAdmin); err != nil {
		return fmt.Errorf("failed to add role inheritance: %w", err)
	}

	e.logger.Infow("default permissions initialized", "policies", len(defaultPolicies))
	return nil
}
