package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jungle-app/jungle-booking/database"
)

type Repository struct{ db database.DB }

func NewRepository(db database.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetSlots(ctx context.Context, serviceID string, from, to time.Time) ([]Slot, error) {
	sql := `
			SELECT id, service_id, slot_start, slot_end
			FROM service_slots
			WHERE service_id=$1 AND slot_start >= $2 AND slot_start < $3
			ORDER BY slot_start ASC;
		`

	rows, err := r.db.Query(ctx, sql, serviceID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch slots for service %v: %w", serviceID, err)
	}

	defer rows.Close()

	slots := []Slot{}

	for rows.Next() {
		var slot Slot
		if err := rows.Scan(&slot.ID, &slot.ServiceID, &slot.Start, &slot.End); err != nil {
			return nil, fmt.Errorf("error scanning slot row: %w", err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating slot rows: %w", err)
	}

	return slots, nil
}

// HasSlots reports whether the service has any stored slot on any day.
func (r *Repository) HasSlots(ctx context.Context, serviceID string) (bool, error) {
	sql := `SELECT EXISTS(SELECT 1 FROM service_slots WHERE service_id=$1);`

	var exists bool
	if err := r.db.QueryRow(ctx, sql, serviceID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check slots for service %v: %w", serviceID, err)
	}

	return exists, nil
}

func (r *Repository) InsertBooking(ctx context.Context, booking Booking) (Booking, error) {
	sql := `
			INSERT INTO bookings(
			guest_id, service_id, slot_start, slot_end, people_count, qr_token)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, created_at;
		`

	err := r.db.QueryRow(ctx, sql,
		booking.GuestID,
		booking.ServiceID,
		booking.SlotStart,
		booking.SlotEnd,
		booking.PeopleCount,
		booking.AccessToken,
	).Scan(&booking.ID, &booking.CreatedAt)

	if err != nil {
		return Booking{}, fmt.Errorf("failed to insert booking: %w", err)
	}

	return booking, nil
}

func (r *Repository) GetBookingByID(ctx context.Context, id string) (Booking, error) {
	sql := `
			SELECT id, guest_id, service_id, slot_start, slot_end, people_count, qr_token, created_at
			FROM bookings
			WHERE id=$1;
		`

	var booking Booking
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&booking.ID,
		&booking.GuestID,
		&booking.ServiceID,
		&booking.SlotStart,
		&booking.SlotEnd,
		&booking.PeopleCount,
		&booking.AccessToken,
		&booking.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return Booking{}, ErrBookingNotFound
	}

	if err != nil {
		return Booking{}, fmt.Errorf("failed to fetch booking with id %v: %w", id, err)
	}

	return booking, nil
}

// GetBookingsForGuest lists a guest's bookings, latest slot first, with the
// booked service's summary when the service still exists.
func (r *Repository) GetBookingsForGuest(ctx context.Context, guestID string) ([]Booking, error) {
	sql := `
			SELECT b.id, b.guest_id, b.service_id, b.slot_start, b.slot_end, b.people_count, b.qr_token, b.created_at,
				s.title, s.location, s.latitude, s.longitude, s.image_url
			FROM bookings b
			LEFT JOIN services s ON s.id = b.service_id
			WHERE b.guest_id=$1
			ORDER BY b.slot_start DESC;
		`

	rows, err := r.db.Query(ctx, sql, guestID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for guest '%v': %w", guestID, err)
	}

	defer rows.Close()

	bookings := []Booking{}

	for rows.Next() {
		var booking Booking
		var title, location *string
		var summary ServiceSummary

		err := rows.Scan(
			&booking.ID,
			&booking.GuestID,
			&booking.ServiceID,
			&booking.SlotStart,
			&booking.SlotEnd,
			&booking.PeopleCount,
			&booking.AccessToken,
			&booking.CreatedAt,
			&title,
			&location,
			&summary.Latitude,
			&summary.Longitude,
			&summary.ImageURL,
		)

		if err != nil {
			return nil, fmt.Errorf("failed to scan bookings for guest '%v': %w", guestID, err)
		}

		if title != nil {
			summary.Title = *title
			if location != nil {
				summary.Location = *location
			}
			booking.Service = &summary
		}

		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings rows: %w", err)
	}

	return bookings, nil
}

// DeleteBookingForGuest removes the booking only if guestID owns it.
func (r *Repository) DeleteBookingForGuest(ctx context.Context, id, guestID string) error {
	sql := `DELETE FROM bookings WHERE id=$1 AND guest_id=$2;`

	tag, err := r.db.Exec(ctx, sql, id, guestID)

	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrCancelRejected
	}

	return nil
}
