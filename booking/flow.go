package booking

import (
	"fmt"

	"github.com/jungle-app/jungle-booking/supabase"
)

type State int

const (
	Browsing State = iota
	SlotSelected
	Confirming
	Confirmed
	Failed
)

func (s State) String() string {
	switch s {
	case Browsing:
		return "browsing"
	case SlotSelected:
		return "slot_selected"
	case Confirming:
		return "confirming"
	case Confirmed:
		return "confirmed"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Flow tracks one reservation attempt:
// Browsing -> SlotSelected -> Confirming -> Confirmed | Failed.
// A failed attempt may be confirmed again.
type Flow struct {
	state   State
	guestID string
	hour    string
	booking Booking
	err     error
}

func NewFlow() *Flow {
	return &Flow{state: Browsing}
}

func (f *Flow) State() State { return f.state }

func (f *Flow) GuestID() string { return f.guestID }

func (f *Flow) Hour() string { return f.hour }

func (f *Flow) Err() error { return f.err }

func (f *Flow) Booking() Booking { return f.booking }

func (f *Flow) invalid(action string) error {
	return fmt.Errorf("%w: cannot %s while %s", ErrInvalidBookingState, action, f.state)
}

// SelectSlot picks an hour. Without a signed-in user the flow stays where it
// is and ErrSignInRequired is returned.
func (f *Flow) SelectSlot(user *supabase.User, hour string) error {
	switch f.state {
	case Browsing, SlotSelected, Failed:
	default:
		return f.invalid("select a slot")
	}

	if user == nil || user.ID == "" {
		return ErrSignInRequired
	}

	f.state = SlotSelected
	f.guestID = user.ID
	f.hour = hour
	f.err = nil

	return nil
}

func (f *Flow) Confirm() error {
	if f.state != SlotSelected && f.state != Failed {
		return f.invalid("confirm")
	}

	f.state = Confirming
	f.err = nil

	return nil
}

func (f *Flow) Complete(booking Booking) error {
	if f.state != Confirming {
		return f.invalid("complete")
	}

	f.state = Confirmed
	f.booking = booking

	return nil
}

func (f *Flow) Fail(err error) error {
	if f.state != Confirming {
		return f.invalid("fail")
	}

	f.state = Failed
	f.err = err

	return nil
}
