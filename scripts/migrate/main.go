// Applies the database schema. Idempotent; safe to run on every deploy.
//
// Usage: DATABASE_URL=postgres://... go run scripts/migrate/main.go
package main

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS debate_sessions (
		id              UUID PRIMARY KEY,
		status          TEXT NOT NULL DEFAULT 'pending',
		resume_text     TEXT NOT NULL,
		job_description TEXT NOT NULL,
		created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		completed_at    TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS agent_turns (
		id            UUID PRIMARY KEY,
		session_id    UUID NOT NULL REFERENCES debate_sessions(id) ON DELETE CASCADE,
		agent_name    TEXT NOT NULL,
		response_text TEXT NOT NULL,
		turn_order    INTEGER NOT NULL,
		thumbs_up     BOOLEAN,
		feedback_text TEXT,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (session_id, agent_name)
	)`,
	`CREATE TABLE IF NOT EXISTS aggregated_learnings (
		id               UUID PRIMARY KEY,
		pattern_type     TEXT NOT NULL,
		description      TEXT NOT NULL,
		agent_name       TEXT NOT NULL,
		frequency        INTEGER NOT NULL DEFAULT 1,
		confidence_score DOUBLE PRECISION NOT NULL DEFAULT 0.5,
		last_updated     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (pattern_type, description, agent_name)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_agent_turns_session ON agent_turns (session_id, turn_order)`,
	`CREATE INDEX IF NOT EXISTS idx_learnings_rank ON aggregated_learnings (frequency DESC, last_updated DESC)`,
}

func main() {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		fmt.Fprintln(os.Stderr, "DATABASE_URL is required")
		os.Exit(1)
	}

	db, err := sql.Open("postgres", url)
	if err != nil {
		fmt.Fprintln(os.Stderr, "open:", err)
		os.Exit(1)
	}
	defer db.Close()

	for i, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			fmt.Fprintf(os.Stderr, "statement %d: %v\n", i+1, err)
			os.Exit(1)
		}
	}
	fmt.Println("schema up to date")
}
