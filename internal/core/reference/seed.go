// Copyright (c) 2026 LearnHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/taibuivan/learnhub/internal/platform/ctxutil"
)

// # Seeding

// Seed is the YAML document of default master data for a fresh environment.
type Seed struct {
	Categories       []CreateCategoryInput        `yaml:"categories"`
	DifficultyLevels []CreateDifficultyLevelInput `yaml:"difficulty_levels"`
	DurationUnits    []CreateDurationUnitInput    `yaml:"duration_units"`
	ContentTypes     []CreateContentTypeInput     `yaml:"content_types"`
}

// SeedReport counts the rows inserted per dataset. Datasets that already held
// rows are listed in Skipped.
type SeedReport struct {
	Inserted map[string]int
	Skipped  []string
}

// DecodeSeed parses a seed document. Unknown keys are rejected.
func DecodeSeed(reader io.Reader) (*Seed, error) {
	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)

	seed := &Seed{}
	if err := decoder.Decode(seed); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("reference: decode seed: %w", err)
	}

	return seed, nil
}

/*
ApplySeed inserts the seed rows of every dataset that is still empty.

Description: A dataset with at least one row (active or not) is left alone, so
running the seed twice is harmless. Inserts go through the regular create path
and get the same defaults as API writes.

Parameters:
  - ctx: context.Context
  - seed: *Seed

Returns:
  - SeedReport: Per-dataset insert counts
  - error: First listing or insert failure
*/
func (service *Service) ApplySeed(ctx context.Context, seed *Seed) (SeedReport, error) {
	report := SeedReport{Inserted: make(map[string]int, len(datasetOrder))}

	steps := []struct {
		dataset string
		isEmpty func() (bool, error)
		insert  func() (int, error)
	}{
		{
			DatasetCategories,
			func() (bool, error) { rows, err := service.ListCategories(ctx); return len(rows) == 0, err },
			func() (int, error) { return seedAll(ctx, seed.Categories, service.CreateCategory) },
		},
		{
			DatasetDifficultyLevels,
			func() (bool, error) { rows, err := service.ListDifficultyLevels(ctx); return len(rows) == 0, err },
			func() (int, error) { return seedAll(ctx, seed.DifficultyLevels, service.CreateDifficultyLevel) },
		},
		{
			DatasetDurationUnits,
			func() (bool, error) { rows, err := service.ListDurationUnits(ctx); return len(rows) == 0, err },
			func() (int, error) { return seedAll(ctx, seed.DurationUnits, service.CreateDurationUnit) },
		},
		{
			DatasetContentTypes,
			func() (bool, error) { rows, err := service.ListContentTypes(ctx); return len(rows) == 0, err },
			func() (int, error) { return seedAll(ctx, seed.ContentTypes, service.CreateContentType) },
		},
	}

	logger := ctxutil.GetLogger(ctx)
	for _, step := range steps {
		empty, err := step.isEmpty()
		if err != nil {
			return report, err
		}
		if !empty {
			report.Skipped = append(report.Skipped, step.dataset)
			logger.InfoContext(ctx, "seed_dataset_skipped", slog.String("dataset", step.dataset))
			continue
		}

		inserted, err := step.insert()
		report.Inserted[step.dataset] = inserted
		if err != nil {
			return report, err
		}
		logger.InfoContext(ctx, "seed_dataset_applied", slog.String("dataset", step.dataset), slog.Int("rows", inserted))
	}

	return report, nil
}

// seedAll creates inputs in document order, so equal order_index values keep
// the order they were written in.
func seedAll[In, Out any](ctx context.Context, inputs []In, create func(context.Context, In) (Out, error)) (int, error) {
	for index, input := range inputs {
		if _, err := create(ctx, input); err != nil {
			return index, err
		}
	}
	return len(inputs), nil
}
