package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jungle-app/jungle-booking/apperr"
	"github.com/jungle-app/jungle-booking/supabase"
)

//go:generate mockgen -source=booking_service.go -destination=mocks/mock_booking_service.go -package=mocks

type BookingRepository interface {
	GetSlots(ctx context.Context, serviceID string, from, to time.Time) ([]Slot, error)
	HasSlots(ctx context.Context, serviceID string) (bool, error)
	InsertBooking(ctx context.Context, booking Booking) (Booking, error)
	GetBookingByID(ctx context.Context, id string) (Booking, error)
	GetBookingsForGuest(ctx context.Context, guestID string) ([]Booking, error)
	DeleteBookingForGuest(ctx context.Context, id, guestID string) error
}

// SessionSource yields the signed-in user, or nil while no session is
// available yet.
type SessionSource interface {
	CurrentUser(ctx context.Context) (*supabase.User, error)
}

type SessionFunc func(ctx context.Context) (*supabase.User, error)

func (f SessionFunc) CurrentUser(ctx context.Context) (*supabase.User, error) {
	return f(ctx)
}

const defaultPollInterval = 250 * time.Millisecond

type Service struct {
	repo         BookingRepository
	loc          *time.Location
	sessionWait  time.Duration
	pollInterval time.Duration
	now          func() time.Time
	logger       *slog.Logger
}

func NewService(repo BookingRepository, loc *time.Location, sessionWait, pollInterval time.Duration) *Service {
	if loc == nil {
		loc = time.Local
	}

	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}

	return &Service{
		repo:         repo,
		loc:          loc,
		sessionWait:  sessionWait,
		pollInterval: pollInterval,
		now:          time.Now,
		logger:       slog.Default().With("component", "booking"),
	}
}

func (s *Service) Location() *time.Location {
	return s.loc
}

// ListSlots returns the slots starting on day. A zero day means today. The
// default slots stand in only for services without any stored slot, or when
// the slots cannot be fetched. A scheduled service has nothing to offer on a
// day outside its schedule.
func (s *Service) ListSlots(ctx context.Context, serviceID string, day time.Time) []Slot {
	if day.IsZero() {
		day = s.now()
	}

	from, to := dayBounds(day, s.loc)

	slots, err := s.repo.GetSlots(ctx, serviceID, from, to)
	if err != nil {
		s.logger.Warn("falling back to default slots", "service_id", serviceID, "err", err)
		return DefaultSlots(serviceID, day, s.loc)
	}

	if len(slots) == 0 {
		scheduled, err := s.repo.HasSlots(ctx, serviceID)
		if err != nil {
			s.logger.Warn("falling back to default slots", "service_id", serviceID, "err", err)
			return DefaultSlots(serviceID, day, s.loc)
		}

		if scheduled {
			return []Slot{}
		}

		return DefaultSlots(serviceID, day, s.loc)
	}

	for i := range slots {
		slots[i].Time = slots[i].Label(s.loc)
	}

	return slots
}

func (s *Service) Reserve(ctx context.Context, user *supabase.User, req ReserveRequest) (Booking, error) {
	flow := NewFlow()

	if err := flow.SelectSlot(user, req.Hour); err != nil {
		return Booking{}, err
	}

	return s.Submit(ctx, flow, req)
}

// Submit confirms a flow that already has a slot selected. A flow left in
// Failed may be submitted again.
func (s *Service) Submit(ctx context.Context, flow *Flow, req ReserveRequest) (Booking, error) {
	slots := s.ListSlots(ctx, req.ServiceID, req.Day)

	slot, ok := FindSlot(slots, flow.Hour(), s.loc)
	if !ok {
		return Booking{}, fmt.Errorf("%w: %v", ErrSlotNotFound, flow.Hour())
	}

	if err := flow.Confirm(); err != nil {
		return Booking{}, err
	}

	booking, err := s.repo.InsertBooking(ctx, Booking{
		GuestID:     flow.GuestID(),
		ServiceID:   req.ServiceID,
		SlotStart:   slot.Start,
		SlotEnd:     slot.End,
		PeopleCount: ParsePeople(req.People),
		AccessToken: NewAccessToken(s.now()),
	})

	if err != nil {
		flow.Fail(err)
		return Booking{}, fmt.Errorf("failed to create booking: %w", err)
	}

	flow.Complete(booking)

	s.logger.Info("booking created", "booking_id", booking.ID, "service_id", booking.ServiceID, "guest_id", booking.GuestID)

	return booking, nil
}

func (s *Service) FindBookingsForGuest(ctx context.Context, guestID string) ([]Booking, error) {
	return s.repo.GetBookingsForGuest(ctx, guestID)
}

func (s *Service) FindBookingByID(ctx context.Context, id string, user *supabase.User) (Booking, error) {
	if user == nil {
		return Booking{}, ErrSignInRequired
	}

	booking, err := s.repo.GetBookingByID(ctx, id)

	if err != nil {
		return Booking{}, err
	}

	if booking.GuestID != user.ID {
		return Booking{}, ErrNotAllowed
	}

	return booking, nil
}

// BookingQR renders the access token of one of the user's bookings.
func (s *Service) BookingQR(ctx context.Context, id string, user *supabase.User, size int) ([]byte, error) {
	booking, err := s.FindBookingByID(ctx, id, user)

	if err != nil {
		return nil, err
	}

	png, err := QRCode(booking.AccessToken, size)

	if err != nil {
		return nil, fmt.Errorf("failed to render qr code: %w", err)
	}

	return png, nil
}

func (s *Service) CancelBooking(ctx context.Context, id string, session SessionSource) error {
	user, err := s.waitForUser(ctx, session)

	if err != nil {
		return err
	}

	booking, err := s.repo.GetBookingByID(ctx, id)

	if err != nil {
		return err
	}

	if booking.GuestID != user.ID {
		return apperr.WithUserMessage(ErrNotAllowed, NotOwnerMessage)
	}

	err = s.repo.DeleteBookingForGuest(ctx, id, user.ID)

	if errors.Is(err, ErrCancelRejected) {
		return apperr.WithUserMessage(err, CancelRejectedMessage)
	}

	if err != nil {
		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	s.logger.Info("booking canceled", "booking_id", id, "guest_id", user.ID)

	return nil
}

// waitForUser polls session until it yields a user or sessionWait elapses.
func (s *Service) waitForUser(ctx context.Context, session SessionSource) (*supabase.User, error) {
	if session == nil {
		return nil, ErrSignInRequired
	}

	waitCtx, cancel := context.WithTimeout(ctx, s.sessionWait)
	defer cancel()

	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		user, err := session.CurrentUser(waitCtx)

		if err != nil {
			if waitCtx.Err() != nil && ctx.Err() == nil {
				return nil, ErrSignInRequired
			}
			return nil, err
		}

		if user != nil && user.ID != "" {
			return user, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-waitCtx.Done():
			return nil, ErrSignInRequired
		case <-ticker.C:
		}
	}
}
