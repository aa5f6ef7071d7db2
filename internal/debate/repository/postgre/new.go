package postgre

import (
	"database/sql"
	"fmt"

	"resume-roast/internal/debate/repository"
	"resume-roast/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the debate domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("debate/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn returns a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("debate/repository/postgre.%s", method)
}
