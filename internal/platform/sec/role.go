// Copyright (c) 2026 BrewBuzz. All rights reserved.

package sec

import "github.com/brewbuzz/brewbuzz/internal/platform/apperr"

// # User Roles

// UserRole represents the authorization level granted to an account.
type UserRole string

const (
	// Can publish directly, moderate submissions, and manage the catalog
	RoleAdmin UserRole = "admin"

	// Default role for standard registered users
	RoleMember UserRole = "member"
)

// IsValid reports whether r is a recognised [UserRole] value.
func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleMember
}

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r UserRole) level() int {

	// Linear scale (10-40) allows for future intermediate roles
	switch r {
	case RoleAdmin:
		return 40
	case RoleMember:
		return 10
	default:
		return 0
	}
}

// # Service-Layer Guards

// RequireRole verifies that the claims belong to an authenticated principal
// holding at least the target role.
//
// # Why here and not only in middleware?
//
// Routing-level [middleware.RequireRole] already gates admin endpoints, but
// privileged service operations repeat the check so that authorization rules
// are enforced (and unit-testable) independently of HTTP wiring.
//
// # Returns
//   - apperr.Unauthorized when claims are nil (anonymous caller).
//   - apperr.Forbidden when the role is insufficient.
func RequireRole(claims *AuthClaims, target UserRole) error {
	if claims == nil {
		return apperr.Unauthorized("Authentication required")
	}
	if !UserRole(claims.Role).AtLeast(target) {
		return apperr.Forbidden("Insufficient permissions")
	}
	return nil
}

// RequireAdmin is shorthand for RequireRole(claims, RoleAdmin).
func RequireAdmin(claims *AuthClaims) error {
	return RequireRole(claims, RoleAdmin)
}
