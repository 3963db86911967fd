package authorization

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUserRole(t *testing.T) {
	tests := []struct {
		in   string
		want UserRole
	}{
		{"ADMIN", RoleAdmin},
		{"admin", RoleAdmin},
		{" super_admin ", RoleSuperAdmin},
		{"USER", RoleUser},
		{"root", RoleUser},
		{"", RoleUser},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseUserRole(tt.in))
		})
	}
}

func TestUserRole_IsAdminAndSubject(t *testing.T) {
	assert.False(t, RoleUser.IsAdmin())
	assert.True(t, RoleAdmin.IsAdmin())
	assert.True(t, RoleSuperAdmin.IsAdmin())
	assert.Equal(t, "super_admin", RoleSuperAdmin.Subject())
}
