package persistence

import (
	"context"
	"database/sql"

	sharedPersistence "github.com/avancini-tools/studyhall/internal/shared/infrastructure/persistence"
)

// sqliteQuerier abstracts *sql.DB and *sql.Tx for the SQLite repositories.
type sqliteQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// querier returns the context transaction when present, otherwise the handle.
func querier(ctx context.Context, db *sql.DB) sqliteQuerier {
	if info, ok := sharedPersistence.SQLiteTxInfoFromContext(ctx); ok {
		return info.Tx
	}
	return db
}
