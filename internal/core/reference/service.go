// Copyright (c) 2026 LearnHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/learnhub/internal/platform/apperr"
	"github.com/taibuivan/learnhub/internal/platform/ctxutil"
	"github.com/taibuivan/learnhub/internal/platform/dberr"
	"github.com/taibuivan/learnhub/pkg/pointer"
	"github.com/taibuivan/learnhub/pkg/uuidv7"
)

// MsgMasterDataFailed is the only message clients see when the aggregate fails.
const MsgMasterDataFailed = "Failed to fetch master data"

// # Service Layer

// Service orchestrates business rules for master data.
type Service struct {
	repo              Repository
	masterDataTimeout time.Duration
}

// NewService constructs a new reference [Service].
//
// masterDataTimeout bounds the whole aggregate fan-out. Zero leaves only the
// caller's deadline in place; the API always passes the positive
// MASTER_DATA_TIMEOUT, while offline tools such as the seeder pass zero.
func NewService(repo Repository, masterDataTimeout time.Duration) *Service {
	return &Service{repo: repo, masterDataTimeout: masterDataTimeout}
}

// # Listing

// ListCategories returns every category, active or not, in display order.
func (service *Service) ListCategories(ctx context.Context) ([]*Category, error) {
	categories, err := service.repo.ListCategories(ctx, ListFilter{})
	if err != nil {
		return nil, dberr.Wrap(err, "list_categories")
	}
	return nonNil(categories), nil
}

// ListDifficultyLevels returns every difficulty level in display order.
func (service *Service) ListDifficultyLevels(ctx context.Context) ([]*DifficultyLevel, error) {
	levels, err := service.repo.ListDifficultyLevels(ctx, ListFilter{})
	if err != nil {
		return nil, dberr.Wrap(err, "list_difficulty_levels")
	}
	return nonNil(levels), nil
}

// ListDurationUnits returns every duration unit in display order.
func (service *Service) ListDurationUnits(ctx context.Context) ([]*DurationUnit, error) {
	units, err := service.repo.ListDurationUnits(ctx, ListFilter{})
	if err != nil {
		return nil, dberr.Wrap(err, "list_duration_units")
	}
	return nonNil(units), nil
}

// ListContentTypes returns every content type in display order.
func (service *Service) ListContentTypes(ctx context.Context) ([]*ContentType, error) {
	contentTypes, err := service.repo.ListContentTypes(ctx, ListFilter{})
	if err != nil {
		return nil, dberr.Wrap(err, "list_content_types")
	}
	return nonNil(contentTypes), nil
}

// # Creation

/*
CreateCategory persists a new category.

Description: Assigns a UUIDv7 id and resolves omitted order_index / is_active
to their defaults. Explicit zero values are kept as sent.

Parameters:
  - ctx: context.Context
  - input: CreateCategoryInput

Returns:
  - *Category: The stored row including created_at
  - error: DATA_ACCESS_ERROR on insert failure
*/
func (service *Service) CreateCategory(ctx context.Context, input CreateCategoryInput) (*Category, error) {
	category := &Category{
		ID:          uuidv7.New(),
		Name:        input.Name,
		Description: input.Description,
		Icon:        input.Icon,
		Color:       input.Color,
		OrderIndex:  pointer.Fallback(input.OrderIndex, DefaultOrderIndex),
		IsActive:    pointer.Fallback(input.IsActive, DefaultIsActive),
	}

	if err := service.repo.CreateCategory(ctx, category); err != nil {
		return nil, dberr.Wrap(err, "create_category")
	}

	return category, nil
}

// CreateDifficultyLevel persists a new difficulty level with defaults applied.
func (service *Service) CreateDifficultyLevel(ctx context.Context, input CreateDifficultyLevelInput) (*DifficultyLevel, error) {
	level := &DifficultyLevel{
		ID:          uuidv7.New(),
		Name:        input.Name,
		Code:        input.Code,
		Description: input.Description,
		Color:       input.Color,
		OrderIndex:  pointer.Fallback(input.OrderIndex, DefaultOrderIndex),
		IsActive:    pointer.Fallback(input.IsActive, DefaultIsActive),
	}

	if err := service.repo.CreateDifficultyLevel(ctx, level); err != nil {
		return nil, dberr.Wrap(err, "create_difficulty_level")
	}

	return level, nil
}

// CreateDurationUnit persists a new duration unit with defaults applied.
func (service *Service) CreateDurationUnit(ctx context.Context, input CreateDurationUnitInput) (*DurationUnit, error) {
	unit := &DurationUnit{
		ID:          uuidv7.New(),
		Name:        input.Name,
		Code:        input.Code,
		Description: input.Description,
		OrderIndex:  pointer.Fallback(input.OrderIndex, DefaultOrderIndex),
		IsActive:    pointer.Fallback(input.IsActive, DefaultIsActive),
	}

	if err := service.repo.CreateDurationUnit(ctx, unit); err != nil {
		return nil, dberr.Wrap(err, "create_duration_unit")
	}

	return unit, nil
}

// CreateContentType persists a new content type with defaults applied.
func (service *Service) CreateContentType(ctx context.Context, input CreateContentTypeInput) (*ContentType, error) {
	contentType := &ContentType{
		ID:          uuidv7.New(),
		Name:        input.Name,
		Code:        input.Code,
		Description: input.Description,
		Icon:        input.Icon,
		OrderIndex:  pointer.Fallback(input.OrderIndex, DefaultOrderIndex),
		IsActive:    pointer.Fallback(input.IsActive, DefaultIsActive),
	}

	if err := service.repo.CreateContentType(ctx, contentType); err != nil {
		return nil, dberr.Wrap(err, "create_content_type")
	}

	return contentType, nil
}

// # Aggregate

/*
GetMasterData returns every active row of the four reference tables.

Description: The four queries run concurrently and are all awaited before any
result is looked at. Failures are then checked in a fixed order (categories,
difficulty levels, duration units, content types); the first one found is
logged and the whole call fails. No partial snapshot is ever returned.

Parameters:
  - ctx: context.Context

Returns:
  - *MasterData: Four ordered, active-only slices (empty, never nil)
  - error: INTERNAL_ERROR "Failed to fetch master data"
*/
func (service *Service) GetMasterData(ctx context.Context) (*MasterData, error) {
	if service.masterDataTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, service.masterDataTimeout)
		defer cancel()
	}

	active := ListFilter{ActiveOnly: true}

	var (
		data     MasterData
		failures [len(datasetOrder)]error
		group    errgroup.Group
	)

	// Each goroutine records its own failure slot. The group is only a join:
	// a plain errgroup.Group does not cancel siblings.
	group.Go(func() (err error) {
		data.Categories, err = service.repo.ListCategories(ctx, active)
		failures[0] = err
		return err
	})
	group.Go(func() (err error) {
		data.DifficultyLevels, err = service.repo.ListDifficultyLevels(ctx, active)
		failures[1] = err
		return err
	})
	group.Go(func() (err error) {
		data.DurationUnits, err = service.repo.ListDurationUnits(ctx, active)
		failures[2] = err
		return err
	})
	group.Go(func() (err error) {
		data.ContentTypes, err = service.repo.ListContentTypes(ctx, active)
		failures[3] = err
		return err
	})

	// Wait reports whichever failure finished first; selection below is by
	// dataset order instead.
	_ = group.Wait()

	for index, dataset := range datasetOrder {
		if failures[index] == nil {
			continue
		}

		ctxutil.GetLogger(ctx).ErrorContext(ctx, "master_data_fetch_failed",
			slog.String("dataset", dataset),
			slog.Any("error", failures[index]),
		)
		return nil, apperr.ServerError(MsgMasterDataFailed, fmt.Errorf("fetch %s: %w", dataset, failures[index]))
	}

	data.Categories = nonNil(data.Categories)
	data.DifficultyLevels = nonNil(data.DifficultyLevels)
	data.DurationUnits = nonNil(data.DurationUnits)
	data.ContentTypes = nonNil(data.ContentTypes)

	return &data, nil
}

// nonNil turns a nil slice into an empty one so it encodes as [].
func nonNil[T any](items []*T) []*T {
	if items == nil {
		return []*T{}
	}
	return items
}
