// Package repository is the only caller of the database client. Every
// operation consults the access filter before touching storage, so an
// unauthorized write fails without issuing a query.
package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"arqzoy-backend/internal/supabase"
)

type Repository struct {
	db *supabase.DatabaseClient
}

func New(db *supabase.DatabaseClient) *Repository {
	return &Repository{db: db}
}

// ready guards every operation: a repository constructed without a database
// connection answers BackendUnavailable instead of panicking.
func (r *Repository) ready() error {
	if r.db == nil {
		return fmt.Errorf("database not configured: %w", ErrBackendUnavailable)
	}
	return nil
}

// classify maps a database error into the taxonomy: a zero-row single read
// is NotFound, anything else is the backend erroring.
func classify(err error, action string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", action, ErrNotFound)
	}
	return fmt.Errorf("%s: %v: %w", action, err, ErrBackendUnavailable)
}
