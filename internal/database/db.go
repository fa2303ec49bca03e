package database

import (
	"context"
	"database/sql"
)

// DB is the narrow persistence surface the repositories consume. The concrete
// implementation is a pgx pool; tests substitute in-memory fakes at the
// repository interfaces instead, so DB stays a thin pass-through.
type DB interface {
	Ping(ctx context.Context) error
	Close() error

	Exec(ctx context.Context, query string, args ...any) (int64, error)
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) Row

	// SQLDB exposes the database/sql view of the pool for the migration
	// runner.
	SQLDB() *sql.DB
}

type Rows interface {
	Close()
	Next() bool
	Scan(dest ...any) error
	Err() error
}

type Row interface {
	Scan(dest ...any) error
}
