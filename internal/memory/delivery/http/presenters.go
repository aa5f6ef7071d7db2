package http

import (
	"errors"

	"resume-roast/internal/model"
	"resume-roast/pkg/response"
)

var errInvalidLimit = errors.New("limit must be a non-negative integer")

type patternResp struct {
	ID              string            `json:"id"`
	PatternType     string            `json:"pattern_type"`
	Description     string            `json:"description"`
	AgentName       string            `json:"agent_name"`
	Frequency       int               `json:"frequency"`
	ConfidenceScore float64           `json:"confidence_score"`
	LastUpdated     response.DateTime `json:"last_updated"`
}

type patternsResp struct {
	Patterns []patternResp `json:"patterns"`
}

func newPatternsResp(patterns []model.LearningPattern) patternsResp {
	out := make([]patternResp, len(patterns))
	for i, lp := range patterns {
		out[i] = patternResp{
			ID:              lp.ID,
			PatternType:     string(lp.PatternType),
			Description:     lp.Description,
			AgentName:       lp.AgentName,
			Frequency:       lp.Frequency,
			ConfidenceScore: lp.ConfidenceScore,
			LastUpdated:     response.DateTime(lp.LastUpdated),
		}
	}
	return patternsResp{Patterns: out}
}
