package api

import (
	"context"
	"time"

	bk "github.com/jungle-app/jungle-booking/booking"
	"github.com/jungle-app/jungle-booking/catalog"
	"github.com/jungle-app/jungle-booking/profile"
	"github.com/jungle-app/jungle-booking/supabase"
)

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

type CatalogService interface {
	FetchServices(ctx context.Context, limit int) []catalog.Service
	FetchService(ctx context.Context, id string) (catalog.Service, error)
	FetchFavoriteIDs(ctx context.Context, guestID string) catalog.FavoriteSet
	FetchFavoriteServices(ctx context.Context, guestID string) []catalog.Service
	AddFavorite(ctx context.Context, guestID, serviceID string) error
	RemoveFavorite(ctx context.Context, guestID, serviceID string) error
	ToggleFavorite(ctx context.Context, guestID, serviceID string) (bool, error)
}

type BookingService interface {
	Location() *time.Location
	ListSlots(ctx context.Context, serviceID string, day time.Time) []bk.Slot
	Reserve(ctx context.Context, user *supabase.User, req bk.ReserveRequest) (bk.Booking, error)
	FindBookingsForGuest(ctx context.Context, guestID string) ([]bk.Booking, error)
	FindBookingByID(ctx context.Context, id string, user *supabase.User) (bk.Booking, error)
	BookingQR(ctx context.Context, id string, user *supabase.User, size int) ([]byte, error)
	CancelBooking(ctx context.Context, id string, session bk.SessionSource) error
}

type RecentService interface {
	Get(ctx context.Context, viewer string) []string
	Add(ctx context.Context, id, viewer string)
}

type ProfileService interface {
	Get(ctx context.Context, user supabase.User) profile.Profile
	UpdateAccount(ctx context.Context, user supabase.User, accessToken string, update profile.Update) (supabase.User, error)
	UploadAvatar(ctx context.Context, user supabase.User, accessToken string, data []byte, contentType string) (string, error)
}
