// Copyright (c) 2026 LearnHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference

import "context"

// # Reference Data Access

// Repository defines the data access contract for master data.
//
// List methods order rows by order_index ascending, breaking ties by
// insertion order. Failures are returned as DATA_ACCESS_ERROR app errors.
type Repository interface {

	// ## Category Data Access

	/*
		ListCategories retrieves categories in display order.

		Parameters:
		  - context: context.Context
		  - filter: ListFilter (ActiveOnly restricts to active rows)

		Returns:
		  - []*Category: Ordered rows, never nil on success
		  - error: Database retrieval failures
	*/
	ListCategories(context context.Context, filter ListFilter) ([]*Category, error)

	/*
		CreateCategory inserts a fully populated category.

		Parameters:
		  - context: context.Context
		  - category: *Category (ID set by the caller; CreatedAt filled on return)

		Returns:
		  - error: Constraint violations or execution errors
	*/
	CreateCategory(context context.Context, category *Category) error

	// ## Difficulty Level Data Access

	// ListDifficultyLevels retrieves difficulty levels in display order.
	ListDifficultyLevels(context context.Context, filter ListFilter) ([]*DifficultyLevel, error)

	// CreateDifficultyLevel inserts a difficulty level and fills its CreatedAt.
	CreateDifficultyLevel(context context.Context, level *DifficultyLevel) error

	// ## Duration Unit Data Access

	// ListDurationUnits retrieves duration units in display order.
	ListDurationUnits(context context.Context, filter ListFilter) ([]*DurationUnit, error)

	// CreateDurationUnit inserts a duration unit and fills its CreatedAt.
	CreateDurationUnit(context context.Context, unit *DurationUnit) error

	// ## Content Type Data Access

	// ListContentTypes retrieves content types in display order.
	ListContentTypes(context context.Context, filter ListFilter) ([]*ContentType, error)

	// CreateContentType inserts a content type and fills its CreatedAt.
	CreateContentType(context context.Context, contentType *ContentType) error
}
