// Copyright (c) 2026 LearnHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CoreContentTypeTable represents the 'core.contenttype' table
type CoreContentTypeTable struct {
	Table       string
	ID          string
	Name        string
	Code        string
	Description string
	Icon        string
	OrderIndex  string
	IsActive    string
	CreatedAt   string
}

// CoreContentType is the schema definition for core.contenttype
var CoreContentType = CoreContentTypeTable{
	Table:       "core.contenttype",
	ID:          "id",
	Name:        "name",
	Code:        "code",
	Description: "description",
	Icon:        "icon",
	OrderIndex:  "orderindex",
	IsActive:    "isactive",
	CreatedAt:   "createdat",
}

func (t CoreContentTypeTable) Columns() []string {
	return []string{t.ID, t.Name, t.Code, t.Description, t.Icon, t.OrderIndex, t.IsActive, t.CreatedAt}
}
