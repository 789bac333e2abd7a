package profile

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jungle-app/jungle-booking/supabase"
)

//go:generate mockgen -source=profile_service.go -destination=mocks/mock_profile_service.go -package=mocks

type ProfileRepository interface {
	GetAvatarURL(ctx context.Context, userID string) (*string, error)
	UpsertAvatarURL(ctx context.Context, userID, avatarURL string) error
}

type Service struct {
	repo   ProfileRepository
	client supabase.SupabaseClient
	bucket string
	logger *slog.Logger
}

func NewService(repo ProfileRepository, client supabase.SupabaseClient, bucket string) *Service {
	return &Service{
		repo:   repo,
		client: client,
		bucket: bucket,
		logger: slog.Default().With("component", "profile"),
	}
}

// Get never fails on a missing avatar: the profile is returned without one.
func (s *Service) Get(ctx context.Context, user supabase.User) Profile {
	profile := Profile{ID: user.ID, Username: user.Username, Email: user.Email}

	avatarURL, err := s.repo.GetAvatarURL(ctx, user.ID)
	if err != nil {
		s.logger.Warn("failed to load avatar", "user_id", user.ID, "err", err)
		return profile
	}

	profile.AvatarURL = avatarURL

	return profile
}

// UpdateAccount sends only the fields that differ from user. When nothing
// changed the hosted backend is not called and user is returned as is.
func (s *Service) UpdateAccount(ctx context.Context, user supabase.User, accessToken string, update Update) (supabase.User, error) {
	var changes supabase.UserUpdate

	if update.Username != "" && update.Username != user.Username {
		changes.Username = &update.Username
	}

	if update.Email != "" && update.Email != user.Email {
		changes.Email = &update.Email
	}

	if update.Password != "" {
		changes.Password = &update.Password
	}

	if changes.Empty() {
		return user, nil
	}

	updated, err := s.client.UpdateUser(ctx, accessToken, changes)
	if err != nil {
		return supabase.User{}, fmt.Errorf("failed to update account: %w", err)
	}

	return *updated, nil
}

// UploadAvatar stores data as <bucket>/<userID>/avatar.<ext>, replacing any
// earlier avatar, and records its public URL on the profile.
func (s *Service) UploadAvatar(ctx context.Context, user supabase.User, accessToken string, data []byte, contentType string) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyAvatar
	}

	ext, contentType, err := imageExtension(data, contentType)
	if err != nil {
		return "", err
	}

	objectPath := fmt.Sprintf("%s/avatar.%s", user.ID, ext)

	if err := s.client.UploadObject(ctx, accessToken, s.bucket, objectPath, data, contentType); err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}

	avatarURL := s.client.PublicURL(s.bucket, objectPath)

	if err := s.repo.UpsertAvatarURL(ctx, user.ID, avatarURL); err != nil {
		return "", err
	}

	s.logger.Info("avatar updated", "user_id", user.ID, "path", objectPath)

	return avatarURL, nil
}
