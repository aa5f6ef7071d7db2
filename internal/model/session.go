package model

import "time"

// SessionStatus is the lifecycle state of a debate session.
// Transitions are forward-only: pending → running → completed|failed.
type SessionStatus string

const (
	SessionStatusPending   SessionStatus = "pending"
	SessionStatusRunning   SessionStatus = "running"
	SessionStatusCompleted SessionStatus = "completed"
	SessionStatusFailed    SessionStatus = "failed"
)

// Terminal reports whether the status allows no further transitions.
func (s SessionStatus) Terminal() bool {
	return s == SessionStatusCompleted || s == SessionStatusFailed
}

// Session is one debate's lifecycle container. CompletedAt is set exactly
// once, when the session enters a terminal status.
type Session struct {
	ID             string
	Status         SessionStatus
	ResumeText     string
	JobDescription string
	CreatedAt      time.Time
	CompletedAt    *time.Time
}
