package booking

import "errors"

var ErrBookingNotFound = errors.New("booking not found")

var ErrInvalidBookingState = errors.New("invalid booking state")

var ErrNotAllowed = errors.New("not allowed to perform this operation")

var ErrSignInRequired = errors.New("sign in required")

var ErrSlotNotFound = errors.New("selected time does not match an available slot")

// ErrCancelRejected means the delete ran but removed nothing, typically
// because the backend's row policies refused it.
var ErrCancelRejected = errors.New("booking cancellation was rejected")

const (
	NotOwnerMessage       = "You can only cancel your own bookings."
	CancelRejectedMessage = "The booking could not be canceled. It may already have been removed."
)
