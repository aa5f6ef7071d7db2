package memory

import (
	"context"

	"resume-roast/internal/model"
)

//go:generate mockery --name UseCase

// UseCase aggregates user feedback into weighted learning patterns and
// serves them back as prompt context for later debates.
type UseCase interface {
	// Submit folds one piece of feedback into the learning store.
	Submit(ctx context.Context, in SubmitInput) (model.LearningPattern, error)
	// TopPatterns returns up to limit patterns ordered by frequency, then
	// recency.
	TopPatterns(ctx context.Context, limit int) ([]model.LearningPattern, error)
	// Snapshot returns the cached pattern descriptions used as memory
	// context. It never blocks on the database.
	Snapshot() []string
	// StartRefresher periodically rebuilds the snapshot until ctx is done.
	StartRefresher(ctx context.Context)
}
