// Copyright (c) 2026 LearnHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/learnhub/internal/platform/database/schema"
	"github.com/taibuivan/learnhub/internal/platform/dberr"
	"github.com/taibuivan/learnhub/internal/platform/postgres"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db postgres.DB
}

// NewPostgresRepository returns a fully wired postgres implementation.
func NewPostgresRepository(db postgres.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// # Query Builders

// orderColumns names the sort keys shared by every reference table.
type orderColumns struct {
	isActive, orderIndex, createdAt, id string
}

// selectQuery builds the ordered listing statement for one table.
// Ties on order_index fall back to insertion order (createdat, then the
// time-ordered UUIDv7 id) so repeated listings are stable.
func selectQuery(table string, columns []string, keys orderColumns, filter ListFilter) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "SELECT %s FROM %s", strings.Join(columns, ", "), table)
	if filter.ActiveOnly {
		fmt.Fprintf(&builder, " WHERE %s = TRUE", keys.isActive)
	}
	fmt.Fprintf(&builder, " ORDER BY %s ASC, %s ASC, %s ASC", keys.orderIndex, keys.createdAt, keys.id)

	return builder.String()
}

// insertQuery builds an INSERT for every column but createdat, returning createdat.
func insertQuery(table string, columns []string, createdAt string) string {
	insertable := make([]string, 0, len(columns))
	placeholders := make([]string, 0, len(columns))

	for _, column := range columns {
		if column == createdAt {
			continue
		}
		insertable = append(insertable, column)
		placeholders = append(placeholders, fmt.Sprintf("$%d", len(insertable)))
	}

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		table, strings.Join(insertable, ", "), strings.Join(placeholders, ", "), createdAt)
}

// # Category

/*
ListCategories retrieves categories from core.category.

Parameters:
  - context: context.Context
  - filter: ListFilter

Returns:
  - []*Category: Ordered rows
  - error: Database execution or scanning errors
*/
func (repository *PostgresRepository) ListCategories(context context.Context, filter ListFilter) ([]*Category, error) {
	table := schema.CoreCategory
	query := selectQuery(table.Table, table.Columns(),
		orderColumns{table.IsActive, table.OrderIndex, table.CreatedAt, table.ID}, filter)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_categories")
	}

	categories, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*Category, error) {
		category := &Category{}
		err := row.Scan(&category.ID, &category.Name, &category.Description, &category.Icon,
			&category.Color, &category.OrderIndex, &category.IsActive, &category.CreatedAt)
		return category, err
	})
	if err != nil {
		return nil, dberr.Wrap(err, "scan_category")
	}

	return categories, nil
}

// CreateCategory inserts a category row and fills CreatedAt from the database.
func (repository *PostgresRepository) CreateCategory(context context.Context, category *Category) error {
	table := schema.CoreCategory
	query := insertQuery(table.Table, table.Columns(), table.CreatedAt)

	err := repository.db.QueryRow(context, query,
		category.ID, category.Name, category.Description, category.Icon,
		category.Color, category.OrderIndex, category.IsActive,
	).Scan(&category.CreatedAt)

	return dberr.Wrap(err, "create_category")
}

// # Difficulty Level

// ListDifficultyLevels retrieves difficulty levels from core.difficultylevel.
func (repository *PostgresRepository) ListDifficultyLevels(context context.Context, filter ListFilter) ([]*DifficultyLevel, error) {
	table := schema.CoreDifficultyLevel
	query := selectQuery(table.Table, table.Columns(),
		orderColumns{table.IsActive, table.OrderIndex, table.CreatedAt, table.ID}, filter)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_difficulty_levels")
	}

	levels, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*DifficultyLevel, error) {
		level := &DifficultyLevel{}
		err := row.Scan(&level.ID, &level.Name, &level.Code, &level.Description,
			&level.Color, &level.OrderIndex, &level.IsActive, &level.CreatedAt)
		return level, err
	})
	if err != nil {
		return nil, dberr.Wrap(err, "scan_difficulty_level")
	}

	return levels, nil
}

// CreateDifficultyLevel inserts a difficulty level row.
func (repository *PostgresRepository) CreateDifficultyLevel(context context.Context, level *DifficultyLevel) error {
	table := schema.CoreDifficultyLevel
	query := insertQuery(table.Table, table.Columns(), table.CreatedAt)

	err := repository.db.QueryRow(context, query,
		level.ID, level.Name, level.Code, level.Description,
		level.Color, level.OrderIndex, level.IsActive,
	).Scan(&level.CreatedAt)

	return dberr.Wrap(err, "create_difficulty_level")
}

// # Duration Unit

// ListDurationUnits retrieves duration units from core.durationunit.
func (repository *PostgresRepository) ListDurationUnits(context context.Context, filter ListFilter) ([]*DurationUnit, error) {
	table := schema.CoreDurationUnit
	query := selectQuery(table.Table, table.Columns(),
		orderColumns{table.IsActive, table.OrderIndex, table.CreatedAt, table.ID}, filter)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_duration_units")
	}

	units, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*DurationUnit, error) {
		unit := &DurationUnit{}
		err := row.Scan(&unit.ID, &unit.Name, &unit.Code, &unit.Description,
			&unit.OrderIndex, &unit.IsActive, &unit.CreatedAt)
		return unit, err
	})
	if err != nil {
		return nil, dberr.Wrap(err, "scan_duration_unit")
	}

	return units, nil
}

// CreateDurationUnit inserts a duration unit row.
func (repository *PostgresRepository) CreateDurationUnit(context context.Context, unit *DurationUnit) error {
	table := schema.CoreDurationUnit
	query := insertQuery(table.Table, table.Columns(), table.CreatedAt)

	err := repository.db.QueryRow(context, query,
		unit.ID, unit.Name, unit.Code, unit.Description, unit.OrderIndex, unit.IsActive,
	).Scan(&unit.CreatedAt)

	return dberr.Wrap(err, "create_duration_unit")
}

// # Content Type

// ListContentTypes retrieves content types from core.contenttype.
func (repository *PostgresRepository) ListContentTypes(context context.Context, filter ListFilter) ([]*ContentType, error) {
	table := schema.CoreContentType
	query := selectQuery(table.Table, table.Columns(),
		orderColumns{table.IsActive, table.OrderIndex, table.CreatedAt, table.ID}, filter)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_content_types")
	}

	contentTypes, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*ContentType, error) {
		contentType := &ContentType{}
		err := row.Scan(&contentType.ID, &contentType.Name, &contentType.Code, &contentType.Description,
			&contentType.Icon, &contentType.OrderIndex, &contentType.IsActive, &contentType.CreatedAt)
		return contentType, err
	})
	if err != nil {
		return nil, dberr.Wrap(err, "scan_content_type")
	}

	return contentTypes, nil
}

// CreateContentType inserts a content type row.
func (repository *PostgresRepository) CreateContentType(context context.Context, contentType *ContentType) error {
	table := schema.CoreContentType
	query := insertQuery(table.Table, table.Columns(), table.CreatedAt)

	err := repository.db.QueryRow(context, query,
		contentType.ID, contentType.Name, contentType.Code, contentType.Description,
		contentType.Icon, contentType.OrderIndex, contentType.IsActive,
	).Scan(&contentType.CreatedAt)

	return dberr.Wrap(err, "create_content_type")
}
