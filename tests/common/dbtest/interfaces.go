//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool, pgx.Tx and pgx.Conn.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CountRows counts rows in table, optionally narrowed by a WHERE clause that
// uses positional args.
func CountRows(t *testing.T, db DBLike, table, where string, args ...any) int {
	t.Helper()

	query := "SELECT count(*) FROM " + pgx.Identifier{table}.Sanitize()
	if where != "" {
		query += " WHERE " + where
	}
	var n int
	require.NoError(t, db.QueryRow(context.Background(), query, args...).Scan(&n), "count %s", table)
	return n
}
