package postgre

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"resume-roast/internal/memory/repository"
	"resume-roast/internal/model"
)

const learningColumns = `id, pattern_type, description, agent_name, frequency, confidence_score, last_updated`

// UpsertLearning inserts a new pattern at frequency 1, or reinforces the
// existing row keyed by (pattern_type, description, agent_name): frequency
// grows by one and confidence only ever moves up, capped.
func (r *implRepository) UpsertLearning(ctx context.Context, opt repository.UpsertLearningOptions) (model.LearningPattern, error) {
	const query = `
		INSERT INTO aggregated_learnings (id, pattern_type, description, agent_name, frequency, confidence_score, last_updated)
		VALUES ($1, $2, $3, $4, 1, LEAST($5::float8, $6::float8), NOW())
		ON CONFLICT (pattern_type, description, agent_name) DO UPDATE
		SET frequency        = aggregated_learnings.frequency + 1,
		    confidence_score = GREATEST(aggregated_learnings.confidence_score, LEAST(EXCLUDED.confidence_score, $6::float8)),
		    last_updated     = NOW()
		RETURNING ` + learningColumns

	var lp model.LearningPattern
	err := r.db.QueryRowContext(ctx, query,
		uuid.New().String(), opt.PatternType, opt.Description, opt.AgentName,
		opt.ConfidenceScore, opt.ConfidenceCap,
	).Scan(&lp.ID, &lp.PatternType, &lp.Description, &lp.AgentName, &lp.Frequency, &lp.ConfidenceScore, &lp.LastUpdated)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertLearning"), err)
		return model.LearningPattern{}, repository.ErrFailedToUpsert
	}
	return lp, nil
}

// ListLearnings returns patterns ordered by frequency, then recency.
func (r *implRepository) ListLearnings(ctx context.Context, opt repository.ListLearningsOptions) ([]model.LearningPattern, error) {
	var b strings.Builder
	var args []any

	b.WriteString(`SELECT ` + learningColumns + ` FROM aggregated_learnings`)
	if opt.AgentName != "" {
		args = append(args, opt.AgentName)
		fmt.Fprintf(&b, " WHERE agent_name = $%d", len(args))
	}
	b.WriteString(" ORDER BY frequency DESC, last_updated DESC")
	if opt.Limit > 0 {
		args = append(args, opt.Limit)
		fmt.Fprintf(&b, " LIMIT $%d", len(args))
	}

	rows, err := r.db.QueryContext(ctx, b.String(), args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListLearnings"), err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	var patterns []model.LearningPattern
	for rows.Next() {
		var lp model.LearningPattern
		if err := rows.Scan(&lp.ID, &lp.PatternType, &lp.Description, &lp.AgentName, &lp.Frequency, &lp.ConfidenceScore, &lp.LastUpdated); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListLearnings"), err)
			return nil, repository.ErrFailedToList
		}
		patterns = append(patterns, lp)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListLearnings"), err)
		return nil, repository.ErrFailedToList
	}
	return patterns, nil
}
