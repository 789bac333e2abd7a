package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jungle-app/jungle-booking/apperr"
)

// Unconfigured stands in for the pool when DATABASE_URL is missing or the
// database cannot be reached. Every call fails with apperr.ErrNotConfigured.
type Unconfigured struct{}

var _ DB = Unconfigured{}

func (Unconfigured) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, apperr.ErrNotConfigured
}

func (Unconfigured) QueryRow(context.Context, string, ...any) pgx.Row {
	return errRow{err: apperr.ErrNotConfigured}
}

func (Unconfigured) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, apperr.ErrNotConfigured
}

type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }
