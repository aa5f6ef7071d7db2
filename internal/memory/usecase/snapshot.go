package usecase

import (
	"context"
	"time"

	"resume-roast/internal/memory/repository"
	"resume-roast/internal/model"
)

// TopPatterns returns up to limit patterns ordered by frequency, then
// recency.
func (uc *implUseCase) TopPatterns(ctx context.Context, limit int) ([]model.LearningPattern, error) {
	if limit <= 0 {
		limit = uc.snapshotLimit
	}
	patterns, err := uc.repo.ListLearnings(ctx, repository.ListLearningsOptions{Limit: limit})
	if err != nil {
		uc.l.Errorf(ctx, "memory.TopPatterns ListLearnings: %v", err)
		return nil, err
	}
	return patterns, nil
}

// Snapshot returns the cached pattern descriptions without touching the
// database.
func (uc *implUseCase) Snapshot() []string {
	return *uc.snapshot.Load()
}

// StartRefresher rebuilds the snapshot immediately and then on a fixed
// interval until ctx is done.
func (uc *implUseCase) StartRefresher(ctx context.Context) {
	uc.refresh(ctx)
	go func() {
		ticker := time.NewTicker(uc.refreshInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				uc.refresh(ctx)
			}
		}
	}()
}

// refresh swaps in a fresh snapshot. On failure the previous snapshot stays
// published.
func (uc *implUseCase) refresh(ctx context.Context) {
	patterns, err := uc.repo.ListLearnings(ctx, repository.ListLearningsOptions{Limit: uc.snapshotLimit})
	if err != nil {
		uc.l.Warnf(ctx, "memory.refresh ListLearnings: %v", err)
		return
	}
	descriptions := make([]string, 0, len(patterns))
	for _, lp := range patterns {
		descriptions = append(descriptions, lp.Description)
	}
	uc.snapshot.Store(&descriptions)
}
