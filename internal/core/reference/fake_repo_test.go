// Copyright (c) 2026 LearnHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference_test

import (
	"context"
	"errors"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/taibuivan/learnhub/internal/core/reference"
)

// fakeRepo is an in-memory [reference.Repository] that orders and filters
// like the Postgres store and supports fault injection per dataset.
type fakeRepo struct {
	mu sync.Mutex

	categories       []*reference.Category
	difficultyLevels []*reference.DifficultyLevel
	durationUnits    []*reference.DurationUnit
	contentTypes     []*reference.ContentType

	// listErrs maps a dataset name to the error its list call returns.
	listErrs map[string]error
	// blocking lists wait for context cancellation instead of answering.
	blocking map[string]bool
	// barrier, when set, makes every list call wait until all of its
	// participants have arrived.
	barrier *sync.WaitGroup

	createErr error
	writes    atomic.Int32
	listCalls atomic.Int32
	filters   sync.Map // dataset -> reference.ListFilter
}

var errNotConcurrent = errors.New("list calls did not overlap")

func (repo *fakeRepo) enter(ctx context.Context, dataset string, filter reference.ListFilter) error {
	repo.listCalls.Add(1)
	repo.filters.Store(dataset, filter)

	if repo.barrier != nil {
		repo.barrier.Done()
		arrived := make(chan struct{})
		go func() {
			repo.barrier.Wait()
			close(arrived)
		}()
		select {
		case <-arrived:
		case <-time.After(2 * time.Second):
			return errNotConcurrent
		}
	}

	if repo.blocking[dataset] {
		<-ctx.Done()
		return ctx.Err()
	}

	return repo.listErrs[dataset]
}

func (repo *fakeRepo) filterFor(dataset string) (reference.ListFilter, bool) {
	value, ok := repo.filters.Load(dataset)
	if !ok {
		return reference.ListFilter{}, false
	}
	return value.(reference.ListFilter), true
}

// selectRows copies, filters and stably orders rows the way the SQL does.
func selectRows[T any](rows []*T, filter reference.ListFilter, isActive func(*T) bool, orderIndex func(*T) int) []*T {
	selected := make([]*T, 0, len(rows))
	for _, row := range rows {
		if filter.ActiveOnly && !isActive(row) {
			continue
		}
		selected = append(selected, row)
	}
	slices.SortStableFunc(selected, func(a, b *T) int { return orderIndex(a) - orderIndex(b) })
	return selected
}

func (repo *fakeRepo) ListCategories(ctx context.Context, filter reference.ListFilter) ([]*reference.Category, error) {
	if err := repo.enter(ctx, reference.DatasetCategories, filter); err != nil {
		return nil, err
	}
	repo.mu.Lock()
	defer repo.mu.Unlock()
	return selectRows(repo.categories, filter,
		func(row *reference.Category) bool { return row.IsActive },
		func(row *reference.Category) int { return row.OrderIndex }), nil
}

func (repo *fakeRepo) CreateCategory(_ context.Context, category *reference.Category) error {
	repo.writes.Add(1)
	if repo.createErr != nil {
		return repo.createErr
	}
	repo.mu.Lock()
	defer repo.mu.Unlock()
	category.CreatedAt = time.Now()
	repo.categories = append(repo.categories, category)
	return nil
}

func (repo *fakeRepo) ListDifficultyLevels(ctx context.Context, filter reference.ListFilter) ([]*reference.DifficultyLevel, error) {
	if err := repo.enter(ctx, reference.DatasetDifficultyLevels, filter); err != nil {
		return nil, err
	}
	repo.mu.Lock()
	defer repo.mu.Unlock()
	return selectRows(repo.difficultyLevels, filter,
		func(row *reference.DifficultyLevel) bool { return row.IsActive },
		func(row *reference.DifficultyLevel) int { return row.OrderIndex }), nil
}

func (repo *fakeRepo) CreateDifficultyLevel(_ context.Context, level *reference.DifficultyLevel) error {
	repo.writes.Add(1)
	if repo.createErr != nil {
		return repo.createErr
	}
	repo.mu.Lock()
	defer repo.mu.Unlock()
	level.CreatedAt = time.Now()
	repo.difficultyLevels = append(repo.difficultyLevels, level)
	return nil
}

func (repo *fakeRepo) ListDurationUnits(ctx context.Context, filter reference.ListFilter) ([]*reference.DurationUnit, error) {
	if err := repo.enter(ctx, reference.DatasetDurationUnits, filter); err != nil {
		return nil, err
	}
	repo.mu.Lock()
	defer repo.mu.Unlock()
	return selectRows(repo.durationUnits, filter,
		func(row *reference.DurationUnit) bool { return row.IsActive },
		func(row *reference.DurationUnit) int { return row.OrderIndex }), nil
}

func (repo *fakeRepo) CreateDurationUnit(_ context.Context, unit *reference.DurationUnit) error {
	repo.writes.Add(1)
	if repo.createErr != nil {
		return repo.createErr
	}
	repo.mu.Lock()
	defer repo.mu.Unlock()
	unit.CreatedAt = time.Now()
	repo.durationUnits = append(repo.durationUnits, unit)
	return nil
}

func (repo *fakeRepo) ListContentTypes(ctx context.Context, filter reference.ListFilter) ([]*reference.ContentType, error) {
	if err := repo.enter(ctx, reference.DatasetContentTypes, filter); err != nil {
		return nil, err
	}
	repo.mu.Lock()
	defer repo.mu.Unlock()
	return selectRows(repo.contentTypes, filter,
		func(row *reference.ContentType) bool { return row.IsActive },
		func(row *reference.ContentType) int { return row.OrderIndex }), nil
}

func (repo *fakeRepo) CreateContentType(_ context.Context, contentType *reference.ContentType) error {
	repo.writes.Add(1)
	if repo.createErr != nil {
		return repo.createErr
	}
	repo.mu.Lock()
	defer repo.mu.Unlock()
	contentType.CreatedAt = time.Now()
	repo.contentTypes = append(repo.contentTypes, contentType)
	return nil
}
