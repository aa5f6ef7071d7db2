package usecase

import (
	"context"

	"resume-roast/internal/debate"
	"resume-roast/internal/debate/repository"
	"resume-roast/internal/memory"
	"resume-roast/internal/model"
)

// ApplyFeedback stores thumbs-up/down on a recorded turn and forwards it to
// the memory aggregator exactly once.
func (uc *implUseCase) ApplyFeedback(ctx context.Context, input debate.ApplyFeedbackInput) (debate.ApplyFeedbackOutput, error) {
	if !model.ValidAgentName(input.AgentName) {
		return debate.ApplyFeedbackOutput{}, debate.ErrInvalidAgentName
	}

	turn, err := uc.repo.GetTurn(ctx, repository.GetTurnOptions{
		SessionID: input.SessionID,
		AgentName: model.NormalizeAgentName(input.AgentName),
	})
	if err != nil {
		uc.l.Errorf(ctx, "debate.ApplyFeedback GetTurn: %v", err)
		return debate.ApplyFeedbackOutput{}, err
	}
	if turn.ID == "" {
		return debate.ApplyFeedbackOutput{}, debate.ErrTurnNotFound
	}

	updated, err := uc.repo.UpdateTurnFeedback(ctx, repository.UpdateTurnFeedbackOptions{
		TurnID:       turn.ID,
		ThumbsUp:     input.ThumbsUp,
		FeedbackText: input.FeedbackText,
	})
	if err != nil {
		uc.l.Errorf(ctx, "debate.ApplyFeedback UpdateTurnFeedback: %v", err)
		return debate.ApplyFeedbackOutput{}, err
	}
	if updated.ID == "" {
		return debate.ApplyFeedbackOutput{}, debate.ErrTurnNotFound
	}

	if _, err := uc.memory.Submit(ctx, memory.SubmitInput{
		AgentName:    updated.AgentName,
		ThumbsUp:     input.ThumbsUp,
		FeedbackText: input.FeedbackText,
	}); err != nil {
		uc.l.Errorf(ctx, "debate.ApplyFeedback Submit: %v", err)
		return debate.ApplyFeedbackOutput{}, err
	}

	// Cached detail now holds stale feedback fields.
	uc.detailCache.Remove(input.SessionID)

	return debate.ApplyFeedbackOutput{Turn: updated}, nil
}
