package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jungle-app/jungle-booking/database"
)

type Repository struct{ db database.DB }

func NewRepository(db database.DB) *Repository {
	return &Repository{db: db}
}

// GetAvatarURL returns nil when the user has no profile row or no avatar.
func (r *Repository) GetAvatarURL(ctx context.Context, userID string) (*string, error) {
	sql := `SELECT avatar_url FROM profiles WHERE id=$1;`

	var avatarURL *string
	err := r.db.QueryRow(ctx, sql, userID).Scan(&avatarURL)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile of user %v: %w", userID, err)
	}

	return avatarURL, nil
}

func (r *Repository) UpsertAvatarURL(ctx context.Context, userID, avatarURL string) error {
	sql := `
			INSERT INTO profiles(id, avatar_url, updated_at)
			VALUES ($1, $2, now())
			ON CONFLICT (id) DO UPDATE SET avatar_url = EXCLUDED.avatar_url, updated_at = now();
		`

	if _, err := r.db.Exec(ctx, sql, userID, avatarURL); err != nil {
		return fmt.Errorf("failed to save avatar of user %v: %w", userID, err)
	}

	return nil
}
