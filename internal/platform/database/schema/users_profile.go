// Copyright (c) 2026 LearnHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// UserProfileTable represents the 'users.profile' table
type UserProfileTable struct {
	Table     string
	ID        string
	Role      string
	CreatedAt string
}

// UserProfile is the schema definition for users.profile
var UserProfile = UserProfileTable{
	Table:     "users.profile",
	ID:        "id",
	Role:      "role",
	CreatedAt: "createdat",
}

// Columns returns all standard column names
func (t UserProfileTable) Columns() []string {
	return []string{t.ID, t.Role, t.CreatedAt}
}
