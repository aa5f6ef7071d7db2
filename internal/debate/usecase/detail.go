package usecase

import (
	"context"

	"resume-roast/internal/debate"
)

// Detail returns the session and its recorded turns in debate order.
// Terminal sessions are served from cache.
func (uc *implUseCase) Detail(ctx context.Context, sessionID string) (debate.SessionDetailOutput, error) {
	if out, ok := uc.detailCache.Get(sessionID); ok {
		return out, nil
	}

	sess, err := uc.repo.GetSession(ctx, sessionID)
	if err != nil {
		uc.l.Errorf(ctx, "debate.Detail GetSession: %v", err)
		return debate.SessionDetailOutput{}, err
	}
	if sess.ID == "" {
		return debate.SessionDetailOutput{}, debate.ErrSessionNotFound
	}

	turns, err := uc.repo.ListTurns(ctx, sessionID)
	if err != nil {
		uc.l.Errorf(ctx, "debate.Detail ListTurns: %v", err)
		return debate.SessionDetailOutput{}, err
	}

	out := debate.SessionDetailOutput{Session: sess, Turns: turns}
	if sess.Status.Terminal() {
		uc.detailCache.Add(sessionID, out)
	}
	return out, nil
}
