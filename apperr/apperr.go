package apperr

import (
	"errors"

	cr "github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotConfigured is returned by every adapter whose backend client could
// not be constructed from the environment.
var ErrNotConfigured = cr.New("backend not configured")

const NotConfiguredMessage = "The booking backend is not configured. Set SUPABASE_URL, SUPABASE_ANON_KEY and DATABASE_URL in .env."

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is reports whether err is, wraps or is marked with ref.
func Is(err, ref error) bool {
	return cr.Is(err, ref)
}

// WithUserMessage attaches a message that UserMessage returns verbatim.
func WithUserMessage(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.WithHint(err, msg)
}

type userMessager interface {
	UserMessage() string
}

// UserMessage picks the text shown to the user for err: the fixed
// not-configured text, an attached hint, the backend's own message, or
// fallback.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}

	if cr.Is(err, ErrNotConfigured) {
		return NotConfiguredMessage
	}

	if hints := cr.GetAllHints(err); len(hints) > 0 {
		return hints[0]
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Message
	}

	var msgErr userMessager
	if errors.As(err, &msgErr) && msgErr.UserMessage() != "" {
		return msgErr.UserMessage()
	}

	return fallback
}
