// Copyright (c) 2026 BrewBuzz. All rights reserved.

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewbuzz/brewbuzz/internal/platform/apperr"
	"github.com/brewbuzz/brewbuzz/internal/platform/sec"
)

/*
TestUserRole_AtLeast tests the role hierarchy comparison.
*/
func TestUserRole_AtLeast(t *testing.T) {
	tests := []struct {
		name   string
		role   sec.UserRole
		target sec.UserRole
		want   bool
	}{
		{"admin_meets_admin", sec.RoleAdmin, sec.RoleAdmin, true},
		{"admin_meets_member", sec.RoleAdmin, sec.RoleMember, true},
		{"member_meets_member", sec.RoleMember, sec.RoleMember, true},
		{"member_below_admin", sec.RoleMember, sec.RoleAdmin, false},
		{"unknown_below_member", sec.UserRole("ghost"), sec.RoleMember, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.AtLeast(tt.target))
		})
	}
}

/*
TestRequireRole tests the service-layer authorization guard.
*/
func TestRequireRole(t *testing.T) {
	t.Run("anonymous_is_unauthorized", func(t *testing.T) {
		err := sec.RequireRole(nil, sec.RoleMember)

		require.Error(t, err)
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, apperr.CodeUnauthorized, ae.Code)
	})

	t.Run("member_cannot_act_as_admin", func(t *testing.T) {
		claims := &sec.AuthClaims{UserID: "u1", Role: string(sec.RoleMember)}

		err := sec.RequireRole(claims, sec.RoleAdmin)

		require.Error(t, err)
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, apperr.CodeForbidden, ae.Code)
	})

	t.Run("member_passes_member_check", func(t *testing.T) {
		claims := &sec.AuthClaims{UserID: "u1", Role: string(sec.RoleMember)}

		assert.NoError(t, sec.RequireRole(claims, sec.RoleMember))
	})

	t.Run("admin_passes_everywhere", func(t *testing.T) {
		claims := &sec.AuthClaims{UserID: "a1", Role: string(sec.RoleAdmin)}

		assert.NoError(t, sec.RequireRole(claims, sec.RoleMember))
		assert.NoError(t, sec.RequireAdmin(claims))
	})
}

/*
TestHashPassword round-trips a password through bcrypt.
*/
func TestHashPassword(t *testing.T) {
	hash, err := sec.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, sec.CheckPasswordHash("correct horse battery staple", hash))
	assert.False(t, sec.CheckPasswordHash("wrong password", hash))
}
