// Copyright (c) 2026 LearnHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package profile

import (
	"context"
	"fmt"

	"github.com/taibuivan/learnhub/internal/platform/database/schema"
	"github.com/taibuivan/learnhub/internal/platform/dberr"
	"github.com/taibuivan/learnhub/internal/platform/postgres"
	"github.com/taibuivan/learnhub/internal/platform/sec"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db postgres.DB
}

// NewPostgresRepository creates a profile store over the shared pool.
func NewPostgresRepository(db postgres.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// FindRole reads the role of a single profile. A missing row yields
// [dberr.ErrNotFound] so callers can tell it apart from a store failure.
func (repository *PostgresRepository) FindRole(context context.Context, id string) (sec.UserRole, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		schema.UserProfile.Role, schema.UserProfile.Table, schema.UserProfile.ID,
	)

	var role sec.UserRole
	if err := repository.db.QueryRow(context, query, id).Scan(&role); err != nil {
		return "", dberr.Wrap(err, "find_profile_role")
	}

	return role, nil
}
