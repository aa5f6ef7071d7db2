package debate

import "context"

// Engine runs the fixed Critic → Advocate → Realist sequence and emits the
// ordered event stream. Run validates its inputs before any gateway call and
// returns the validation error synchronously; generation failures surface as
// a single terminal error event on the channel instead.
type Engine interface {
	Run(ctx context.Context, input RunInput) (<-chan Event, error)
}

//go:generate mockery --name UseCase
type UseCase interface {
	// CreateSession persists a new pending session for the given inputs.
	CreateSession(ctx context.Context, input CreateSessionInput) (CreateSessionOutput, error)

	// StreamSession drives the debate for a pending session, persisting each
	// agent turn as it completes. Events mirror the engine's output exactly,
	// in production order. Cancelling ctx aborts the in-flight agent; turns
	// already recorded stay recorded.
	StreamSession(ctx context.Context, sessionID string) (<-chan Event, error)

	// Detail returns the session and its recorded turns in debate order.
	Detail(ctx context.Context, sessionID string) (SessionDetailOutput, error)

	// ApplyFeedback stores thumbs-up/down on a recorded turn and forwards it
	// to the memory aggregator exactly once.
	ApplyFeedback(ctx context.Context, input ApplyFeedbackInput) (ApplyFeedbackOutput, error)
}
