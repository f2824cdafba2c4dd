// Copyright (c) 2026 LearnHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CoreDurationUnitTable represents the 'core.durationunit' table
type CoreDurationUnitTable struct {
	Table       string
	ID          string
	Name        string
	Code        string
	Description string
	OrderIndex  string
	IsActive    string
	CreatedAt   string
}

// CoreDurationUnit is the schema definition for core.durationunit
var CoreDurationUnit = CoreDurationUnitTable{
	Table:       "core.durationunit",
	ID:          "id",
	Name:        "name",
	Code:        "code",
	Description: "description",
	OrderIndex:  "orderindex",
	IsActive:    "isactive",
	CreatedAt:   "createdat",
}

func (t CoreDurationUnitTable) Columns() []string {
	return []string{t.ID, t.Name, t.Code, t.Description, t.OrderIndex, t.IsActive, t.CreatedAt}
}
