package repository

import "resume-roast/internal/model"

// UpsertLearningOptions holds parameters for creating or reinforcing a
// learning pattern. AgentName must already be normalized (lowercase).
type UpsertLearningOptions struct {
	PatternType     model.PatternType
	Description     string
	AgentName       string
	ConfidenceScore float64
	ConfidenceCap   float64
}

// ListLearningsOptions holds filter parameters for listing patterns.
type ListLearningsOptions struct {
	AgentName string
	Limit     int
}
