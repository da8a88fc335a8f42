// Package postgres provides PostgreSQL implementations of the search
// repository interfaces. All queries are read-only.
package postgres

import (
	"context"
	"database/sql"
)

// Querier is the read-query surface the adapters need. It is satisfied by
// *sql.DB and by circuitbreaker.DBCircuitBreaker, so production wiring can
// route every search read through the breaker while tests pass a plain
// sqlmock database. Every adapter query is a multi-row read; widen this
// only when an adapter actually needs more.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}
