package postgre

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"resume-roast/internal/debate/repository"
	"resume-roast/internal/model"
)

const sessionColumns = `id, status, resume_text, job_description, created_at, completed_at`

// CreateSession inserts a new pending Session and returns the created entity.
func (r *implRepository) CreateSession(ctx context.Context, opt repository.CreateSessionOptions) (model.Session, error) {
	const query = `
		INSERT INTO debate_sessions (id, status, resume_text, job_description, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING ` + sessionColumns

	var sess model.Session
	err := r.db.QueryRowContext(ctx, query,
		uuid.New().String(), model.SessionStatusPending, opt.ResumeText, opt.JobDescription,
	).Scan(&sess.ID, &sess.Status, &sess.ResumeText, &sess.JobDescription, &sess.CreatedAt, &sess.CompletedAt)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateSession"), err)
		return model.Session{}, repository.ErrFailedToInsert
	}
	return sess, nil
}

// GetSession retrieves a single Session by ID.
// Returns zero-value Session (ID == "") when not found.
func (r *implRepository) GetSession(ctx context.Context, id string) (model.Session, error) {
	const query = `SELECT ` + sessionColumns + ` FROM debate_sessions WHERE id = $1`

	var sess model.Session
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&sess.ID, &sess.Status, &sess.ResumeText, &sess.JobDescription, &sess.CreatedAt, &sess.CompletedAt,
	)
	if err == sql.ErrNoRows {
		return model.Session{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetSession"), err)
		return model.Session{}, repository.ErrFailedToGet
	}
	return sess, nil
}

// UpdateSessionStatus applies a forward-only transition; terminal sessions
// are never touched, so completed_at is written at most once.
func (r *implRepository) UpdateSessionStatus(ctx context.Context, id string, status model.SessionStatus) (model.Session, error) {
	const query = `
		UPDATE debate_sessions
		SET status = $2,
		    completed_at = CASE WHEN $2 IN ('completed', 'failed') THEN NOW() ELSE completed_at END
		WHERE id = $1 AND status NOT IN ('completed', 'failed')
		RETURNING ` + sessionColumns

	var sess model.Session
	err := r.db.QueryRowContext(ctx, query, id, status).Scan(
		&sess.ID, &sess.Status, &sess.ResumeText, &sess.JobDescription, &sess.CreatedAt, &sess.CompletedAt,
	)
	if err == sql.ErrNoRows {
		return model.Session{}, nil // missing or already terminal
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateSessionStatus"), err)
		return model.Session{}, repository.ErrFailedToUpdate
	}
	return sess, nil
}
