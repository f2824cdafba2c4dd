// Copyright (c) 2026 LearnHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/taibuivan/learnhub/internal/platform/apperr"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
//
// Missing rows become [ErrNotFound]. Everything else becomes a DATA_ACCESS_ERROR
// whose cause is tagged with the failing action for the server log.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	// 2. Already classified further down the stack
	if apperr.IsAppError(err) {
		return err
	}

	// 3. Query/insert failures keep the store message
	return apperr.DataAccess(fmt.Errorf("%s: %w", action, err))
}
