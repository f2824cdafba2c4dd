//go:build integration

// Copyright (c) 2026 LearnHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference_test

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/taibuivan/learnhub/internal/core/reference"
	"github.com/taibuivan/learnhub/internal/platform/migration"
	"github.com/taibuivan/learnhub/pkg/pointer"
)

// startPostgres runs a disposable database with all migrations applied.
// Run with: go test -tags=integration ./internal/core/reference/...
func startPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("learnhub"),
		postgres.WithUsername("learnhub"),
		postgres.WithPassword("learnhub"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	migrations, err := filepath.Abs("../../../data/migrations")
	require.NoError(t, err)
	require.NoError(t, migration.RunUp(dsn, migrations, slog.New(slog.NewTextHandler(io.Discard, nil))))

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool
}

func TestPostgresRepository(t *testing.T) {
	pool := startPostgres(t)
	service := reference.NewService(reference.NewPostgresRepository(pool), 5*time.Second)
	ctx := context.Background()

	t.Run("create_returns_stored_row", func(t *testing.T) {
		category, err := service.CreateCategory(ctx, reference.CreateCategoryInput{
			Name: "Programming", Icon: pointer.To("code"), IsActive: pointer.To(false),
		})

		require.NoError(t, err)
		assert.False(t, category.IsActive)
		assert.Equal(t, 0, category.OrderIndex)
		assert.False(t, category.CreatedAt.IsZero())
	})

	t.Run("ties_on_order_index_keep_insertion_order", func(t *testing.T) {
		names := []string{"first", "second", "third"}
		for _, name := range names {
			_, err := service.CreateDurationUnit(ctx, reference.CreateDurationUnitInput{
				Name: name, Code: name, OrderIndex: pointer.To(3),
			})
			require.NoError(t, err)
		}
		_, err := service.CreateDurationUnit(ctx, reference.CreateDurationUnitInput{
			Name: "zeroth", Code: "zeroth", OrderIndex: pointer.To(1),
		})
		require.NoError(t, err)

		for range 3 {
			units, err := service.ListDurationUnits(ctx)
			require.NoError(t, err)
			require.Len(t, units, 4)
			assert.Equal(t, []string{"zeroth", "first", "second", "third"},
				[]string{units[0].Name, units[1].Name, units[2].Name, units[3].Name})
		}
	})

	t.Run("aggregate_drops_inactive_rows", func(t *testing.T) {
		_, err := service.CreateContentType(ctx, reference.CreateContentTypeInput{Name: "Video", Code: "video", OrderIndex: pointer.To(2)})
		require.NoError(t, err)
		_, err = service.CreateContentType(ctx, reference.CreateContentTypeInput{Name: "Audio", Code: "audio", IsActive: pointer.To(false)})
		require.NoError(t, err)
		_, err = service.CreateDifficultyLevel(ctx, reference.CreateDifficultyLevelInput{Name: "Beginner", Code: "beginner", Color: pointer.To("green")})
		require.NoError(t, err)

		data, err := service.GetMasterData(ctx)
		require.NoError(t, err)

		assert.Empty(t, data.Categories, "the only category is inactive")
		require.Len(t, data.ContentTypes, 1)
		assert.Equal(t, "video", data.ContentTypes[0].Code)
		require.Len(t, data.DifficultyLevels, 1)
		assert.Equal(t, "green", pointer.Val(data.DifficultyLevels[0].Color))
		assert.Len(t, data.DurationUnits, 4)

		all, err := service.ListContentTypes(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2, "admin listing keeps inactive rows")
	})

	t.Run("constraint_violation_is_data_access", func(t *testing.T) {
		_, err := pool.Exec(ctx, "ALTER TABLE core.category ADD CONSTRAINT category_name_key UNIQUE (name)")
		require.NoError(t, err)

		_, err = service.CreateCategory(ctx, reference.CreateCategoryInput{Name: "Programming"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate key value")
	})
}
