package supabase

import (
	"context"

	"github.com/jungle-app/jungle-booking/apperr"
)

// Unconfigured answers every call with apperr.ErrNotConfigured.
type Unconfigured struct{}

var _ SupabaseClient = Unconfigured{}

func (Unconfigured) SignIn(context.Context, string, string) (*Session, error) {
	return nil, apperr.ErrNotConfigured
}

func (Unconfigured) SignUp(context.Context, string, string, string) (*Session, error) {
	return nil, apperr.ErrNotConfigured
}

func (Unconfigured) SignOut(context.Context, string) error {
	return apperr.ErrNotConfigured
}

func (Unconfigured) ResetPassword(context.Context, string) error {
	return apperr.ErrNotConfigured
}

func (Unconfigured) GetUser(context.Context, string) (*User, error) {
	return nil, apperr.ErrNotConfigured
}

func (Unconfigured) UpdateUser(context.Context, string, UserUpdate) (*User, error) {
	return nil, apperr.ErrNotConfigured
}

func (Unconfigured) UploadObject(context.Context, string, string, string, []byte, string) error {
	return apperr.ErrNotConfigured
}

func (Unconfigured) PublicURL(string, string) string {
	return ""
}
