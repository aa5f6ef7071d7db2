package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"resume-roast/internal/debate"
	"resume-roast/internal/debate/repository"
	"resume-roast/internal/memory"
	"resume-roast/pkg/log"
)

const (
	detailCacheSize = 256
	detailCacheTTL  = 5 * time.Minute
)

type implUseCase struct {
	repo   repository.Repository
	engine debate.Engine
	memory memory.UseCase
	l      log.Logger

	// detailCache holds terminal sessions only; their turns no longer change
	// except through ApplyFeedback, which evicts.
	detailCache *expirable.LRU[string, debate.SessionDetailOutput]
}

// New creates a new debate UseCase.
func New(repo repository.Repository, engine debate.Engine, mem memory.UseCase, l log.Logger) debate.UseCase {
	return &implUseCase{
		repo:        repo,
		engine:      engine,
		memory:      mem,
		l:           l,
		detailCache: expirable.NewLRU[string, debate.SessionDetailOutput](detailCacheSize, nil, detailCacheTTL),
	}
}
