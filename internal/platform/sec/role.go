// Copyright (c) 2026 LearnHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # User Roles

// UserRole represents the role stored on a user profile.
type UserRole string

const (
	// Full access to master-data writes
	RoleAdmin UserRole = "admin"

	// Curates learning content, no master-data writes
	RoleModerator UserRole = "moderator"

	// Default role for registered learners
	RoleMember UserRole = "member"
)

// IsAdmin reports whether the role is exactly the administrator role.
// There is no hierarchy: only the literal "admin" qualifies.
func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}
