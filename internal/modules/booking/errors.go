package booking

import "errors"

var (
	ErrInvalidDates     = errors.New("invalid booking dates")
	ErrRoomNotFound     = errors.New("room not found")
	ErrSelfBooking      = errors.New("owner cannot book own room")
	ErrInvalidCapacity  = errors.New("guests exceed room capacity")
	ErrNotAvailable     = errors.New("room not available for requested dates")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrForbidden        = errors.New("forbidden")
	ErrAlreadyCancelled = errors.New("booking already cancelled")
	ErrDeadlinePassed   = errors.New("cancellation deadline passed")
)
