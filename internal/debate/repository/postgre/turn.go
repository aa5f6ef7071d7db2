package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"resume-roast/internal/debate/repository"
	"resume-roast/internal/model"
)

const turnColumns = `id, session_id, agent_name, response_text, turn_order, thumbs_up, feedback_text, created_at`

func scanTurn(row *sql.Row) (model.AgentTurn, error) {
	var turn model.AgentTurn
	err := row.Scan(
		&turn.ID, &turn.SessionID, &turn.AgentName, &turn.Text,
		&turn.Order, &turn.ThumbsUp, &turn.FeedbackText, &turn.CreatedAt,
	)
	return turn, err
}

// CreateTurn records a finished agent turn. The unique (session_id,
// agent_name) constraint makes repeat calls return the existing turn instead
// of inserting a duplicate.
func (r *implRepository) CreateTurn(ctx context.Context, opt repository.CreateTurnOptions) (model.AgentTurn, error) {
	const query = `
		INSERT INTO agent_turns (id, session_id, agent_name, response_text, turn_order, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (session_id, agent_name) DO NOTHING
		RETURNING ` + turnColumns

	turn, err := scanTurn(r.db.QueryRowContext(ctx, query,
		uuid.New().String(), opt.SessionID, opt.AgentName, opt.Text, opt.Order,
	))
	if err == sql.ErrNoRows {
		// Already recorded: hand back the existing turn unchanged.
		return r.GetTurn(ctx, repository.GetTurnOptions{
			SessionID: opt.SessionID,
			AgentName: opt.AgentName,
		})
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTurn"), err)
		return model.AgentTurn{}, repository.ErrFailedToInsert
	}
	return turn, nil
}

// GetTurn retrieves a single AgentTurn by the provided filters (AND
// condition). Returns zero-value AgentTurn (ID == "") when not found.
func (r *implRepository) GetTurn(ctx context.Context, opt repository.GetTurnOptions) (model.AgentTurn, error) {
	var conds []string
	var args []any
	if opt.ID != "" {
		args = append(args, opt.ID)
		conds = append(conds, fmt.Sprintf("id = $%d", len(args)))
	}
	if opt.SessionID != "" {
		args = append(args, opt.SessionID)
		conds = append(conds, fmt.Sprintf("session_id = $%d", len(args)))
	}
	if opt.AgentName != "" {
		args = append(args, opt.AgentName)
		conds = append(conds, fmt.Sprintf("agent_name = $%d", len(args)))
	}

	query := fmt.Sprintf(`SELECT %s FROM agent_turns WHERE %s LIMIT 1`,
		turnColumns, strings.Join(conds, " AND "))

	turn, err := scanTurn(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.AgentTurn{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetTurn"), err)
		return model.AgentTurn{}, repository.ErrFailedToGet
	}
	return turn, nil
}

// ListTurns returns a session's turns ordered by debate order.
func (r *implRepository) ListTurns(ctx context.Context, sessionID string) ([]model.AgentTurn, error) {
	const query = `SELECT ` + turnColumns + ` FROM agent_turns WHERE session_id = $1 ORDER BY turn_order ASC`

	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTurns"), err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	var turns []model.AgentTurn
	for rows.Next() {
		var turn model.AgentTurn
		if err := rows.Scan(
			&turn.ID, &turn.SessionID, &turn.AgentName, &turn.Text,
			&turn.Order, &turn.ThumbsUp, &turn.FeedbackText, &turn.CreatedAt,
		); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTurns"), err)
			return nil, repository.ErrFailedToList
		}
		turns = append(turns, turn)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTurns"), err)
		return nil, repository.ErrFailedToList
	}
	return turns, nil
}

// UpdateTurnFeedback stores thumbs-up/down and optional feedback text.
func (r *implRepository) UpdateTurnFeedback(ctx context.Context, opt repository.UpdateTurnFeedbackOptions) (model.AgentTurn, error) {
	const query = `
		UPDATE agent_turns
		SET thumbs_up = $2, feedback_text = NULLIF($3, '')
		WHERE id = $1
		RETURNING ` + turnColumns

	turn, err := scanTurn(r.db.QueryRowContext(ctx, query, opt.TurnID, opt.ThumbsUp, opt.FeedbackText))
	if err == sql.ErrNoRows {
		return model.AgentTurn{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTurnFeedback"), err)
		return model.AgentTurn{}, repository.ErrFailedToUpdate
	}
	return turn, nil
}
