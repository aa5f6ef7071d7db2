package postgre

import (
	"database/sql"
	"fmt"

	"resume-roast/internal/memory/repository"
	"resume-roast/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the memory domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("memory/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("memory/repository/postgre.%s", method)
}
