package repository

// CreateSessionOptions holds parameters for inserting a new Session.
type CreateSessionOptions struct {
	ResumeText     string
	JobDescription string
}

// CreateTurnOptions holds parameters for recording a finished agent turn.
// AgentName must already be normalized (lowercase).
type CreateTurnOptions struct {
	SessionID string
	AgentName string
	Text      string
	Order     int
}

// GetTurnOptions holds filter parameters for fetching a single AgentTurn.
type GetTurnOptions struct {
	ID        string
	SessionID string
	AgentName string
}

// UpdateTurnFeedbackOptions holds parameters for storing user feedback on a
// turn.
type UpdateTurnFeedbackOptions struct {
	TurnID       string
	ThumbsUp     bool
	FeedbackText string
}
