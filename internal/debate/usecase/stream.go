package usecase

import (
	"context"

	"resume-roast/internal/debate"
	"resume-roast/internal/debate/repository"
	"resume-roast/internal/model"
)

// StreamSession drives the debate for a pending session. It marks the
// session running, runs the engine with the current memory snapshot, and
// forwards every event while persisting each agent's turn as it completes.
// Cancelling ctx aborts the in-flight agent; turns already recorded stay
// recorded, and the session is marked failed.
func (uc *implUseCase) StreamSession(ctx context.Context, sessionID string) (<-chan debate.Event, error) {
	sess, err := uc.repo.GetSession(ctx, sessionID)
	if err != nil {
		uc.l.Errorf(ctx, "debate.StreamSession GetSession: %v", err)
		return nil, err
	}
	if sess.ID == "" {
		return nil, debate.ErrSessionNotFound
	}
	if sess.Status.Terminal() {
		return nil, debate.ErrSessionTerminal
	}
	if sess.Status == model.SessionStatusRunning {
		return nil, debate.ErrSessionRunning
	}

	updated, err := uc.repo.UpdateSessionStatus(ctx, sessionID, model.SessionStatusRunning)
	if err != nil {
		uc.l.Errorf(ctx, "debate.StreamSession UpdateSessionStatus: %v", err)
		return nil, err
	}
	if updated.ID == "" {
		// Lost the race to another stream.
		return nil, debate.ErrSessionRunning
	}

	memoryContext := uc.memory.Snapshot()
	uc.l.Infof(ctx, "debate.StreamSession: session %s using %d memory patterns", sessionID, len(memoryContext))

	events, err := uc.engine.Run(ctx, debate.RunInput{
		ResumeText:     sess.ResumeText,
		JobDescription: sess.JobDescription,
		MemoryContext:  memoryContext,
	})
	if err != nil {
		uc.failSession(ctx, sessionID)
		return nil, err
	}

	out := make(chan debate.Event)
	go uc.pump(ctx, sessionID, events, out)
	return out, nil
}

// pump forwards engine events to out, recording each agent's completed turn
// and settling the session's final status once the engine channel closes.
func (uc *implUseCase) pump(ctx context.Context, sessionID string, events <-chan debate.Event, out chan<- debate.Event) {
	defer close(out)

	texts := make(map[string]string)
	var workflowDone, generationFailed, recordFailed bool

	for ev := range events {
		switch {
		case ev.Err:
			generationFailed = true
		case !ev.IsComplete:
			texts[ev.AgentName] += ev.Chunk
		case ev.AgentName == model.AgentWorkflow:
			workflowDone = true
		default:
			if err := uc.recordTurn(ctx, sessionID, ev, texts[ev.AgentName]); err != nil {
				recordFailed = true
			}
		}

		select {
		case out <- ev:
		case <-ctx.Done():
			// Receiver is gone; drain the engine so it can shut down.
			for range events {
			}
		}
	}

	// Survives client disconnects: the session must not stay running.
	base := context.WithoutCancel(ctx)
	if workflowDone && !generationFailed && !recordFailed {
		if _, err := uc.repo.UpdateSessionStatus(base, sessionID, model.SessionStatusCompleted); err != nil {
			uc.l.Errorf(base, "debate.pump complete session %s: %v", sessionID, err)
		}
		return
	}
	uc.failSession(base, sessionID)
}

// recordTurn persists one completed agent turn. Uses a detached context so a
// client disconnect mid-write cannot lose an already finished turn.
func (uc *implUseCase) recordTurn(ctx context.Context, sessionID string, ev debate.Event, text string) error {
	_, err := uc.repo.CreateTurn(context.WithoutCancel(ctx), repository.CreateTurnOptions{
		SessionID: sessionID,
		AgentName: model.NormalizeAgentName(ev.AgentName),
		Text:      text,
		Order:     ev.Order,
	})
	if err != nil {
		uc.l.Errorf(ctx, "debate.recordTurn %s/%s: %v", sessionID, ev.AgentName, err)
	}
	return err
}

func (uc *implUseCase) failSession(ctx context.Context, sessionID string) {
	if _, err := uc.repo.UpdateSessionStatus(ctx, sessionID, model.SessionStatusFailed); err != nil {
		uc.l.Errorf(ctx, "debate.failSession %s: %v", sessionID, err)
	}
}
