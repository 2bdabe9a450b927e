package catalog

import "errors"

var (
	ErrHotelNotFound = errors.New("hotel not found")
	ErrRoomExists    = errors.New("room number already exists in hotel")
	ErrForbidden     = errors.New("forbidden")
)
