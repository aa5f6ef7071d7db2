package model

import (
	"strings"
	"time"
)

// Debate agent names. Persisted lowercase; the stream emits them capitalized.
const (
	AgentCritic   = "Critic"
	AgentAdvocate = "Advocate"
	AgentRealist  = "Realist"
	AgentWorkflow = "Workflow"
)

// Fixed debate orders per agent.
const (
	OrderCritic   = 1
	OrderAdvocate = 2
	OrderRealist  = 3
	OrderWorkflow = 4
)

// NormalizeAgentName lowercases an agent name for persistence keys.
func NormalizeAgentName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ValidAgentName reports whether name is one of the three debate agents,
// case-insensitively.
func ValidAgentName(name string) bool {
	switch NormalizeAgentName(name) {
	case NormalizeAgentName(AgentCritic), NormalizeAgentName(AgentAdvocate), NormalizeAgentName(AgentRealist):
		return true
	}
	return false
}

// AgentTurn is one agent's finalized text output within a session.
// At most one turn exists per (session, agent); a turn is created only after
// that agent's stream has completed.
type AgentTurn struct {
	ID           string
	SessionID    string
	AgentName    string
	Text         string
	Order        int
	ThumbsUp     *bool
	FeedbackText *string
	CreatedAt    time.Time
}
