package usecase

import (
	"sync/atomic"
	"time"

	"resume-roast/internal/memory"
	"resume-roast/internal/memory/repository"
	"resume-roast/pkg/log"
)

const (
	defaultRefreshInterval = 30 * time.Second
	defaultSnapshotLimit   = 10
)

type implUseCase struct {
	repo repository.Repository
	l    log.Logger

	refreshInterval time.Duration
	snapshotLimit   int

	// snapshot holds the published memory context. Readers load it without
	// locks; the refresher swaps in a fresh slice.
	snapshot atomic.Pointer[[]string]
}

// Options tunes the snapshot refresher. Zero values fall back to defaults.
type Options struct {
	RefreshInterval time.Duration
	SnapshotLimit   int
}

// New creates a new memory UseCase.
func New(repo repository.Repository, l log.Logger, opts Options) memory.UseCase {
	if opts.RefreshInterval <= 0 {
		opts.RefreshInterval = defaultRefreshInterval
	}
	if opts.SnapshotLimit <= 0 {
		opts.SnapshotLimit = defaultSnapshotLimit
	}
	uc := &implUseCase{
		repo:            repo,
		l:               l,
		refreshInterval: opts.RefreshInterval,
		snapshotLimit:   opts.SnapshotLimit,
	}
	empty := []string{}
	uc.snapshot.Store(&empty)
	return uc
}
