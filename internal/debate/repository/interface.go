package repository

import (
	"context"

	"resume-roast/internal/model"
)

// Repository is the composed interface for the debate domain data store.
type Repository interface {
	SessionRepository
	TurnRepository
}

// SessionRepository defines data access for debate sessions.
type SessionRepository interface {
	CreateSession(ctx context.Context, opt CreateSessionOptions) (model.Session, error)

	// GetSession returns the zero-value Session (ID == "") when not found.
	GetSession(ctx context.Context, id string) (model.Session, error)

	// UpdateSessionStatus applies a forward-only transition. CompletedAt is
	// set when the new status is terminal. Returns the zero-value Session
	// when the session does not exist or is already terminal.
	UpdateSessionStatus(ctx context.Context, id string, status model.SessionStatus) (model.Session, error)
}

// TurnRepository defines data access for agent turns.
type TurnRepository interface {
	// CreateTurn is idempotent per (session, agent): a repeat call returns
	// the already-recorded turn unchanged instead of creating a duplicate.
	CreateTurn(ctx context.Context, opt CreateTurnOptions) (model.AgentTurn, error)

	// GetTurn returns the zero-value AgentTurn (ID == "") when not found.
	GetTurn(ctx context.Context, opt GetTurnOptions) (model.AgentTurn, error)

	// ListTurns returns a session's turns in debate order.
	ListTurns(ctx context.Context, sessionID string) ([]model.AgentTurn, error)

	UpdateTurnFeedback(ctx context.Context, opt UpdateTurnFeedbackOptions) (model.AgentTurn, error)
}
