// Copyright (c) 2026 LearnHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package reference manages the "Master Data" of LearnHub.

It owns the small lookup tables every course screen depends on, and serves
them both one table at a time (for administration) and as a single combined
snapshot (for clients bootstrapping their pickers).

# Core Responsibility

  - Taxonomy: [Category] for grouping courses.
  - Pacing: [DifficultyLevel] and [DurationUnit] for describing effort.
  - Format: [ContentType] for lesson media.

Reads are public. Writes are restricted to admins by the route layer.
*/
package reference

import "time"

// # Defaults

// Applied on create when the caller omits (or nulls) the field.
const (
	DefaultOrderIndex = 0
	DefaultIsActive   = true
)

// # Category Domain

// Category groups courses by subject.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Icon        *string   `json:"icon"`
	Color       *string   `json:"color"`
	OrderIndex  int       `json:"order_index"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateCategoryInput is the request body for creating a [Category].
// Pointer fields distinguish "absent" from an explicit zero value.
type CreateCategoryInput struct {
	Name        string  `json:"name" yaml:"name"`
	Description *string `json:"description" yaml:"description"`
	Icon        *string `json:"icon" yaml:"icon"`
	Color       *string `json:"color" yaml:"color"`
	OrderIndex  *int    `json:"order_index" yaml:"order_index"`
	IsActive    *bool   `json:"is_active" yaml:"is_active"`
}

// # Difficulty Domain

// DifficultyLevel describes how demanding a course is (e.g. "beginner").
type DifficultyLevel struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Description *string   `json:"description"`
	Color       *string   `json:"color"`
	OrderIndex  int       `json:"order_index"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateDifficultyLevelInput is the request body for creating a [DifficultyLevel].
type CreateDifficultyLevelInput struct {
	Name        string  `json:"name" yaml:"name"`
	Code        string  `json:"code" yaml:"code"`
	Description *string `json:"description" yaml:"description"`
	Color       *string `json:"color" yaml:"color"`
	OrderIndex  *int    `json:"order_index" yaml:"order_index"`
	IsActive    *bool   `json:"is_active" yaml:"is_active"`
}

// # Duration Domain

// DurationUnit is the unit a course length is expressed in (e.g. "hours").
type DurationUnit struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Description *string   `json:"description"`
	OrderIndex  int       `json:"order_index"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateDurationUnitInput is the request body for creating a [DurationUnit].
type CreateDurationUnitInput struct {
	Name        string  `json:"name" yaml:"name"`
	Code        string  `json:"code" yaml:"code"`
	Description *string `json:"description" yaml:"description"`
	OrderIndex  *int    `json:"order_index" yaml:"order_index"`
	IsActive    *bool   `json:"is_active" yaml:"is_active"`
}

// # Content Domain

// ContentType is the media format of a lesson (e.g. "video").
type ContentType struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Description *string   `json:"description"`
	Icon        *string   `json:"icon"`
	OrderIndex  int       `json:"order_index"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateContentTypeInput is the request body for creating a [ContentType].
type CreateContentTypeInput struct {
	Name        string  `json:"name" yaml:"name"`
	Code        string  `json:"code" yaml:"code"`
	Description *string `json:"description" yaml:"description"`
	Icon        *string `json:"icon" yaml:"icon"`
	OrderIndex  *int    `json:"order_index" yaml:"order_index"`
	IsActive    *bool   `json:"is_active" yaml:"is_active"`
}

// # Aggregate

// MasterData is the combined snapshot of every active reference row.
type MasterData struct {
	Categories       []*Category        `json:"categories"`
	DifficultyLevels []*DifficultyLevel `json:"difficultyLevels"`
	DurationUnits    []*DurationUnit    `json:"durationUnits"`
	ContentTypes     []*ContentType     `json:"contentTypes"`
}

// # Search Params

// ListFilter narrows a per-table listing.
type ListFilter struct {
	// ActiveOnly drops rows whose is_active flag is false.
	ActiveOnly bool
}

// # Dataset Identifiers

// Dataset names used in logs. The order of [datasetOrder] is the order in
// which aggregate failures are inspected.
const (
	DatasetCategories       = "categories"
	DatasetDifficultyLevels = "difficulty_levels"
	DatasetDurationUnits    = "duration_units"
	DatasetContentTypes     = "content_types"
)

var datasetOrder = [...]string{
	DatasetCategories,
	DatasetDifficultyLevels,
	DatasetDurationUnits,
	DatasetContentTypes,
}
