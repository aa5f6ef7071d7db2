package model

import "time"

// PatternType classifies a learning pattern by the feedback that produced it.
type PatternType string

const (
	PatternPositiveFeedback PatternType = "positive_feedback"
	PatternNegativeFeedback PatternType = "negative_feedback"
)

// LearningPattern is a weighted, deduplicated record summarizing repeated
// feedback. Keyed by (pattern_type, description, agent_name); frequency grows
// by one per matching submission and confidence never decreases.
type LearningPattern struct {
	ID              string
	PatternType     PatternType
	Description     string
	AgentName       string
	Frequency       int
	ConfidenceScore float64
	LastUpdated     time.Time
}
