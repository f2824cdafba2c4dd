// Copyright (c) 2026 LearnHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CoreDifficultyLevelTable represents the 'core.difficultylevel' table
type CoreDifficultyLevelTable struct {
	Table       string
	ID          string
	Name        string
	Code        string
	Description string
	Color       string
	OrderIndex  string
	IsActive    string
	CreatedAt   string
}

// CoreDifficultyLevel is the schema definition for core.difficultylevel
var CoreDifficultyLevel = CoreDifficultyLevelTable{
	Table:       "core.difficultylevel",
	ID:          "id",
	Name:        "name",
	Code:        "code",
	Description: "description",
	Color:       "color",
	OrderIndex:  "orderindex",
	IsActive:    "isactive",
	CreatedAt:   "createdat",
}

func (t CoreDifficultyLevelTable) Columns() []string {
	return []string{t.ID, t.Name, t.Code, t.Description, t.Color, t.OrderIndex, t.IsActive, t.CreatedAt}
}
