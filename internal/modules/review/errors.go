package review

import "errors"

var (
	ErrInvalidRequest  = errors.New("invalid request")
	ErrBookingNotFound = errors.New("booking not found")
	ErrForbidden       = errors.New("forbidden")
	ErrNotEligible     = errors.New("booking not eligible for review")
	ErrAlreadyReviewed = errors.New("booking already reviewed")
)
