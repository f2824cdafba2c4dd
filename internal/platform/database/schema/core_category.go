// Copyright (c) 2026 LearnHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CoreCategoryTable represents the 'core.category' table
type CoreCategoryTable struct {
	Table       string
	ID          string
	Name        string
	Description string
	Icon        string
	Color       string
	OrderIndex  string
	IsActive    string
	CreatedAt   string
}

// CoreCategory is the schema definition for core.category
var CoreCategory = CoreCategoryTable{
	Table:       "core.category",
	ID:          "id",
	Name:        "name",
	Description: "description",
	Icon:        "icon",
	Color:       "color",
	OrderIndex:  "orderindex",
	IsActive:    "isactive",
	CreatedAt:   "createdat",
}

func (t CoreCategoryTable) Columns() []string {
	return []string{t.ID, t.Name, t.Description, t.Icon, t.Color, t.OrderIndex, t.IsActive, t.CreatedAt}
}
