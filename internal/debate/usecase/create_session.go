package usecase

import (
	"context"
	"strings"

	"resume-roast/internal/agent"
	"resume-roast/internal/debate"
	"resume-roast/internal/debate/repository"
)

// CreateSession persists a new pending session for the given inputs.
// Whitespace-only inputs are rejected here, before any session row exists,
// with the same errors the engine would raise at stream time.
func (uc *implUseCase) CreateSession(ctx context.Context, input debate.CreateSessionInput) (debate.CreateSessionOutput, error) {
	if strings.TrimSpace(input.ResumeText) == "" {
		return debate.CreateSessionOutput{}, agent.ErrEmptyResume
	}
	if strings.TrimSpace(input.JobDescription) == "" {
		return debate.CreateSessionOutput{}, agent.ErrEmptyJobDescription
	}

	sess, err := uc.repo.CreateSession(ctx, repository.CreateSessionOptions{
		ResumeText:     input.ResumeText,
		JobDescription: input.JobDescription,
	})
	if err != nil {
		uc.l.Errorf(ctx, "debate.CreateSession: %v", err)
		return debate.CreateSessionOutput{}, err
	}

	uc.l.Infof(ctx, "debate.CreateSession: created session %s", sess.ID)
	return debate.CreateSessionOutput{Session: sess}, nil
}
