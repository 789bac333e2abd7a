package supabase

import (
	"context"
	"errors"
	"fmt"
)

//go:generate mockgen -source=supabase.go -destination=mocks/mock_supabase.go -package=mocks

type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

type Session struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int    `json:"expiresIn"`
	TokenType    string `json:"tokenType"`
	User         User   `json:"user"`
}

// UserUpdate carries only the fields that should change. Nil means untouched.
type UserUpdate struct {
	Email    *string
	Password *string
	Username *string
}

func (u UserUpdate) Empty() bool {
	return u.Email == nil && u.Password == nil && u.Username == nil
}

type SupabaseClient interface {
	SignIn(ctx context.Context, email, password string) (*Session, error)
	SignUp(ctx context.Context, email, password, username string) (*Session, error)
	SignOut(ctx context.Context, accessToken string) error
	ResetPassword(ctx context.Context, email string) error
	GetUser(ctx context.Context, accessToken string) (*User, error)
	UpdateUser(ctx context.Context, accessToken string, update UserUpdate) (*User, error)
	UploadObject(ctx context.Context, accessToken, bucket, objectPath string, data []byte, contentType string) error
	PublicURL(bucket, objectPath string) string
}

var ErrInvalidToken = errors.New("invalid access token")

var ErrVerificationUnavailable = errors.New("local token verification not configured")

// APIError is a non-2xx answer from the hosted auth or storage API.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("request failed with status %d (%s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("request failed with status %d: %s", e.Status, e.Message)
}

// UserMessage is the backend's own wording, shown to users verbatim.
func (e *APIError) UserMessage() string {
	return e.Message
}
