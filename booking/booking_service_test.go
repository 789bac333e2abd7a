package booking_test

import (
	"context"
	"errors"
	"reflect"
	"regexp"
	"testing"
	"time"

	"github.com/jungle-app/jungle-booking/apperr"
	bk "github.com/jungle-app/jungle-booking/booking"
	bk_mocks "github.com/jungle-app/jungle-booking/booking/mocks"
	"github.com/jungle-app/jungle-booking/supabase"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	day      = time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	dayEnd   = day.AddDate(0, 0, 1)
	guest    = &supabase.User{ID: "guest1", Email: "guest1@example.com", Username: "guest1"}
	stranger = &supabase.User{ID: "guest2", Email: "guest2@example.com", Username: "guest2"}
)

var storedSlots = []bk.Slot{
	{ID: "s1", ServiceID: "svc1", Start: day.Add(8 * time.Hour), End: day.Add(8*time.Hour + 30*time.Minute)},
	{ID: "s2", ServiceID: "svc1", Start: day.Add(13 * time.Hour), End: day.Add(13*time.Hour + 30*time.Minute)},
}

var guestBookings = []bk.Booking{{
	ID:          "b1",
	GuestID:     "guest1",
	ServiceID:   "svc1",
	SlotStart:   day.Add(8 * time.Hour),
	SlotEnd:     day.Add(8*time.Hour + 30*time.Minute),
	PeopleCount: 2,
	AccessToken: "BK-1773100800000-abc123",
	CreatedAt:   day,
}}

var tokenPattern = regexp.MustCompile(`^BK-\d+-[0-9a-z]{6}$`)

type testDeps struct {
	repo    *bk_mocks.MockBookingRepository
	session *bk_mocks.MockSessionSource
	service *bk.Service
	ctx     context.Context
}

func newTestDeps(t *testing.T) (*gomock.Controller, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	repo := bk_mocks.NewMockBookingRepository(ctrl)
	session := bk_mocks.NewMockSessionSource(ctrl)
	svc := bk.NewService(repo, time.UTC, 200*time.Millisecond, 10*time.Millisecond)

	return ctrl, testDeps{
		repo: repo, session: session, service: svc, ctx: context.Background(),
	}
}

func TestListSlots(t *testing.T) {

	t.Run("stored slots", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().GetSlots(testDeps.ctx, "svc1", day, dayEnd).Return(append([]bk.Slot{}, storedSlots...), nil).Times(1)

		slots := testDeps.service.ListSlots(testDeps.ctx, "svc1", day.Add(15*time.Hour))

		require.Len(t, slots, 2)
		require.Equal(t, "08:00", slots[0].Time)
		require.Equal(t, "13:00", slots[1].Time)
	})

	t.Run("no slots falls back to defaults", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().GetSlots(testDeps.ctx, "svc1", day, dayEnd).Return([]bk.Slot{}, nil).Times(1)
		testDeps.repo.EXPECT().HasSlots(testDeps.ctx, "svc1").Return(false, nil).Times(1)

		slots := testDeps.service.ListSlots(testDeps.ctx, "svc1", day)

		require.Len(t, slots, 6)
		require.Equal(t, "09:00", slots[0].Time)
		require.Equal(t, "15:00", slots[5].Time)
	})

	t.Run("scheduled on other days only", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().GetSlots(testDeps.ctx, "svc1", day, dayEnd).Return([]bk.Slot{}, nil).Times(1)
		testDeps.repo.EXPECT().HasSlots(testDeps.ctx, "svc1").Return(true, nil).Times(1)

		slots := testDeps.service.ListSlots(testDeps.ctx, "svc1", day)

		require.Empty(t, slots)
	})

	t.Run("schedule check error falls back to defaults", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().GetSlots(testDeps.ctx, "svc1", day, dayEnd).Return([]bk.Slot{}, nil).Times(1)
		testDeps.repo.EXPECT().HasSlots(testDeps.ctx, "svc1").Return(false, errors.New("repo error")).Times(1)

		slots := testDeps.service.ListSlots(testDeps.ctx, "svc1", day)

		require.Len(t, slots, 6)
	})

	t.Run("repo error falls back to defaults", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().GetSlots(testDeps.ctx, "svc1", day, dayEnd).Return(nil, errors.New("repo error")).Times(1)

		slots := testDeps.service.ListSlots(testDeps.ctx, "svc1", day)

		require.Len(t, slots, 6)
		for _, slot := range slots {
			require.Equal(t, "svc1", slot.ServiceID)
			require.Equal(t, 30*time.Minute, slot.End.Sub(slot.Start))
		}
	})
}

func TestReserve(t *testing.T) {

	t.Run("success", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().GetSlots(testDeps.ctx, "svc1", day, dayEnd).Return(append([]bk.Slot{}, storedSlots...), nil).Times(1)
		testDeps.repo.EXPECT().InsertBooking(testDeps.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, b bk.Booking) (bk.Booking, error) {
			require.Equal(t, "guest1", b.GuestID)
			require.Equal(t, "svc1", b.ServiceID)
			require.Equal(t, storedSlots[1].Start, b.SlotStart)
			require.Equal(t, storedSlots[1].End, b.SlotEnd)
			require.Equal(t, 4, b.PeopleCount)
			require.Regexp(t, tokenPattern, b.AccessToken)

			b.ID = "b2"
			b.CreatedAt = day
			return b, nil
		}).Times(1)

		booking, err := testDeps.service.Reserve(testDeps.ctx, guest, bk.ReserveRequest{
			ServiceID: "svc1", Hour: "13:00", Day: day, People: "4+",
		})

		require.Nil(t, err)
		require.Equal(t, "b2", booking.ID)
	})

	t.Run("default slot", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().GetSlots(testDeps.ctx, "svc1", day, dayEnd).Return([]bk.Slot{}, nil).Times(1)
		testDeps.repo.EXPECT().HasSlots(testDeps.ctx, "svc1").Return(false, nil).Times(1)
		testDeps.repo.EXPECT().InsertBooking(testDeps.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, b bk.Booking) (bk.Booking, error) {
			require.Equal(t, day.Add(14*time.Hour), b.SlotStart)
			require.Equal(t, 1, b.PeopleCount)
			return b, nil
		}).Times(1)

		_, err := testDeps.service.Reserve(testDeps.ctx, guest, bk.ReserveRequest{
			ServiceID: "svc1", Hour: "14:00", Day: day, People: "",
		})

		require.Nil(t, err)
	})

	t.Run("off schedule day", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().GetSlots(testDeps.ctx, "svc1", day, dayEnd).Return([]bk.Slot{}, nil).Times(1)
		testDeps.repo.EXPECT().HasSlots(testDeps.ctx, "svc1").Return(true, nil).Times(1)
		testDeps.repo.EXPECT().InsertBooking(gomock.Any(), gomock.Any()).Times(0)

		_, err := testDeps.service.Reserve(testDeps.ctx, guest, bk.ReserveRequest{ServiceID: "svc1", Hour: "09:00", Day: day})

		require.ErrorIs(t, err, bk.ErrSlotNotFound)
	})

	t.Run("signed out", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().GetSlots(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		testDeps.repo.EXPECT().InsertBooking(gomock.Any(), gomock.Any()).Times(0)

		_, err := testDeps.service.Reserve(testDeps.ctx, nil, bk.ReserveRequest{ServiceID: "svc1", Hour: "09:00", Day: day})

		require.ErrorIs(t, err, bk.ErrSignInRequired)
	})

	t.Run("unknown hour", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().GetSlots(testDeps.ctx, "svc1", day, dayEnd).Return(append([]bk.Slot{}, storedSlots...), nil).Times(1)
		testDeps.repo.EXPECT().InsertBooking(gomock.Any(), gomock.Any()).Times(0)

		_, err := testDeps.service.Reserve(testDeps.ctx, guest, bk.ReserveRequest{ServiceID: "svc1", Hour: "21:00", Day: day})

		require.ErrorIs(t, err, bk.ErrSlotNotFound)
	})

	t.Run("insert error", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().GetSlots(testDeps.ctx, "svc1", day, dayEnd).Return(append([]bk.Slot{}, storedSlots...), nil).Times(1)
		testDeps.repo.EXPECT().InsertBooking(testDeps.ctx, gomock.Any()).Return(bk.Booking{}, errors.New("repo error")).Times(1)

		_, err := testDeps.service.Reserve(testDeps.ctx, guest, bk.ReserveRequest{ServiceID: "svc1", Hour: "08:00", Day: day})

		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to create booking")
	})
}

func TestSubmitAfterFailure(t *testing.T) {
	ctrl, testDeps := newTestDeps(t)
	defer ctrl.Finish()

	req := bk.ReserveRequest{ServiceID: "svc1", Hour: "08:00", Day: day, People: "2"}
	flow := bk.NewFlow()
	require.Nil(t, flow.SelectSlot(guest, req.Hour))

	testDeps.repo.EXPECT().GetSlots(testDeps.ctx, "svc1", day, dayEnd).DoAndReturn(func(context.Context, string, time.Time, time.Time) ([]bk.Slot, error) {
		return append([]bk.Slot{}, storedSlots...), nil
	}).Times(2)

	gomock.InOrder(
		testDeps.repo.EXPECT().InsertBooking(testDeps.ctx, gomock.Any()).Return(bk.Booking{}, errors.New("timeout")),
		testDeps.repo.EXPECT().InsertBooking(testDeps.ctx, gomock.Any()).Return(guestBookings[0], nil),
	)

	_, err := testDeps.service.Submit(testDeps.ctx, flow, req)
	require.Error(t, err)
	require.Equal(t, bk.Failed, flow.State())

	booking, err := testDeps.service.Submit(testDeps.ctx, flow, req)
	require.Nil(t, err)
	require.Equal(t, bk.Confirmed, flow.State())
	require.Equal(t, guestBookings[0], booking)
	require.Equal(t, guestBookings[0], flow.Booking())
}

func TestFindBookingsForGuest(t *testing.T) {

	t.Run("success", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().GetBookingsForGuest(testDeps.ctx, "guest1").Return(guestBookings, nil).Times(1)

		bookings, err := testDeps.service.FindBookingsForGuest(testDeps.ctx, "guest1")

		require.Nil(t, err)

		if !reflect.DeepEqual(bookings, guestBookings) {
			t.Fatalf("expected bookings %#v, got %#v", guestBookings, bookings)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().GetBookingsForGuest(testDeps.ctx, "guest1").Return(nil, errors.New("repo error")).Times(1)

		bookings, err := testDeps.service.FindBookingsForGuest(testDeps.ctx, "guest1")

		require.Error(t, err)
		require.Equal(t, 0, len(bookings))
	})
}

func TestFindBookingByID(t *testing.T) {

	t.Run("owner", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().GetBookingByID(testDeps.ctx, "b1").Return(guestBookings[0], nil).Times(1)

		booking, err := testDeps.service.FindBookingByID(testDeps.ctx, "b1", guest)

		require.Nil(t, err)
		require.Equal(t, guestBookings[0], booking)
	})

	t.Run("not owner", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().GetBookingByID(testDeps.ctx, "b1").Return(guestBookings[0], nil).Times(1)

		_, err := testDeps.service.FindBookingByID(testDeps.ctx, "b1", stranger)

		require.ErrorIs(t, err, bk.ErrNotAllowed)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().GetBookingByID(testDeps.ctx, "b9").Return(bk.Booking{}, bk.ErrBookingNotFound).Times(1)

		_, err := testDeps.service.FindBookingByID(testDeps.ctx, "b9", guest)

		require.ErrorIs(t, err, bk.ErrBookingNotFound)
	})
}

func TestBookingQR(t *testing.T) {
	ctrl, testDeps := newTestDeps(t)
	defer ctrl.Finish()

	testDeps.repo.EXPECT().GetBookingByID(testDeps.ctx, "b1").Return(guestBookings[0], nil).Times(1)

	png, err := testDeps.service.BookingQR(testDeps.ctx, "b1", guest, 128)

	require.Nil(t, err)
	require.Equal(t, []byte("\x89PNG"), png[:4])
}

func TestCancelBooking(t *testing.T) {

	t.Run("success", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.session.EXPECT().CurrentUser(gomock.Any()).Return(guest, nil).Times(1)
		testDeps.repo.EXPECT().GetBookingByID(testDeps.ctx, "b1").Return(guestBookings[0], nil).Times(1)
		testDeps.repo.EXPECT().DeleteBookingForGuest(testDeps.ctx, "b1", "guest1").Return(nil).Times(1)

		err := testDeps.service.CancelBooking(testDeps.ctx, "b1", testDeps.session)

		require.Nil(t, err)
	})

	t.Run("session restored while waiting", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		gomock.InOrder(
			testDeps.session.EXPECT().CurrentUser(gomock.Any()).Return(nil, nil).Times(2),
			testDeps.session.EXPECT().CurrentUser(gomock.Any()).Return(guest, nil).Times(1),
		)
		testDeps.repo.EXPECT().GetBookingByID(testDeps.ctx, "b1").Return(guestBookings[0], nil).Times(1)
		testDeps.repo.EXPECT().DeleteBookingForGuest(testDeps.ctx, "b1", "guest1").Return(nil).Times(1)

		err := testDeps.service.CancelBooking(testDeps.ctx, "b1", testDeps.session)

		require.Nil(t, err)
	})

	t.Run("no session", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.session.EXPECT().CurrentUser(gomock.Any()).Return(nil, nil).AnyTimes()
		testDeps.repo.EXPECT().GetBookingByID(gomock.Any(), gomock.Any()).Times(0)
		testDeps.repo.EXPECT().DeleteBookingForGuest(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := testDeps.service.CancelBooking(testDeps.ctx, "b1", testDeps.session)

		require.ErrorIs(t, err, bk.ErrSignInRequired)
	})

	t.Run("not owner", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.session.EXPECT().CurrentUser(gomock.Any()).Return(stranger, nil).Times(1)
		testDeps.repo.EXPECT().GetBookingByID(testDeps.ctx, "b1").Return(guestBookings[0], nil).Times(1)
		testDeps.repo.EXPECT().DeleteBookingForGuest(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := testDeps.service.CancelBooking(testDeps.ctx, "b1", testDeps.session)

		require.ErrorIs(t, err, bk.ErrNotAllowed)
		require.Equal(t, bk.NotOwnerMessage, apperr.UserMessage(err, "fallback"))
	})

	t.Run("rejected", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.session.EXPECT().CurrentUser(gomock.Any()).Return(guest, nil).Times(1)
		testDeps.repo.EXPECT().GetBookingByID(testDeps.ctx, "b1").Return(guestBookings[0], nil).Times(1)
		testDeps.repo.EXPECT().DeleteBookingForGuest(testDeps.ctx, "b1", "guest1").Return(bk.ErrCancelRejected).Times(1)

		err := testDeps.service.CancelBooking(testDeps.ctx, "b1", testDeps.session)

		require.ErrorIs(t, err, bk.ErrCancelRejected)
		require.NotContains(t, err.Error(), "failed to cancel booking")
		require.Equal(t, bk.CancelRejectedMessage, apperr.UserMessage(err, "fallback"))
	})

	t.Run("transport error", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.session.EXPECT().CurrentUser(gomock.Any()).Return(guest, nil).Times(1)
		testDeps.repo.EXPECT().GetBookingByID(testDeps.ctx, "b1").Return(guestBookings[0], nil).Times(1)
		testDeps.repo.EXPECT().DeleteBookingForGuest(testDeps.ctx, "b1", "guest1").Return(errors.New("connection reset")).Times(1)

		err := testDeps.service.CancelBooking(testDeps.ctx, "b1", testDeps.session)

		require.Error(t, err)
		require.NotErrorIs(t, err, bk.ErrCancelRejected)
		require.Contains(t, err.Error(), "failed to cancel booking")
	})

	t.Run("session func", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().GetBookingByID(testDeps.ctx, "b1").Return(guestBookings[0], nil).Times(1)
		testDeps.repo.EXPECT().DeleteBookingForGuest(testDeps.ctx, "b1", "guest1").Return(nil).Times(1)

		session := bk.SessionFunc(func(context.Context) (*supabase.User, error) { return guest, nil })
		err := testDeps.service.CancelBooking(testDeps.ctx, "b1", session)

		require.Nil(t, err)
	})
}
