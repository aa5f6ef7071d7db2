package repository

import (
	"context"

	"resume-roast/internal/model"
)

// Repository persists aggregated learning patterns.
type Repository interface {
	// UpsertLearning inserts a pattern or, when one with the same
	// (pattern_type, description, agent_name) exists, bumps its frequency
	// and raises (never lowers) its confidence.
	UpsertLearning(ctx context.Context, opt UpsertLearningOptions) (model.LearningPattern, error)
	// ListLearnings returns patterns ordered by frequency DESC, then
	// last_updated DESC.
	ListLearnings(ctx context.Context, opt ListLearningsOptions) ([]model.LearningPattern, error)
}
