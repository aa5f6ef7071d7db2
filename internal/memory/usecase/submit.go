package usecase

import (
	"context"

	"resume-roast/internal/memory"
	"resume-roast/internal/memory/repository"
	"resume-roast/internal/model"
)

// Submit converts one thumbs-up/down into a learning pattern and folds it
// into the store. Thumbs-up seeds a high-confidence positive pattern,
// thumbs-down a low-confidence negative one; repeats of the same pattern
// bump frequency and can only raise confidence.
func (uc *implUseCase) Submit(ctx context.Context, in memory.SubmitInput) (model.LearningPattern, error) {
	if !model.ValidAgentName(in.AgentName) {
		return model.LearningPattern{}, memory.ErrInvalidAgentName
	}

	patternType := model.PatternNegativeFeedback
	confidence := memory.BaselineConfidenceNegative
	if in.ThumbsUp {
		patternType = model.PatternPositiveFeedback
		confidence = memory.BaselineConfidencePositive
	}

	// Truncation counts characters, not bytes, so multibyte feedback never
	// gets cut mid-rune into invalid UTF-8.
	description := in.FeedbackText
	if runes := []rune(description); len(runes) > memory.DescriptionMaxLen {
		description = string(runes[:memory.DescriptionMaxLen])
	}
	if description == "" {
		if in.ThumbsUp {
			description = "User gave positive feedback"
		} else {
			description = "User gave negative feedback"
		}
	}

	lp, err := uc.repo.UpsertLearning(ctx, repository.UpsertLearningOptions{
		PatternType:     patternType,
		Description:     description,
		AgentName:       model.NormalizeAgentName(in.AgentName),
		ConfidenceScore: confidence,
		ConfidenceCap:   memory.ConfidenceCap,
	})
	if err != nil {
		uc.l.Errorf(ctx, "memory.Submit UpsertLearning: %v", err)
		return model.LearningPattern{}, err
	}

	uc.l.Infof(ctx, "memory.Submit: %s pattern for %s (frequency %d)", lp.PatternType, lp.AgentName, lp.Frequency)
	return lp, nil
}
