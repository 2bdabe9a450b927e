package domain

import "time"

// Review references exactly one booking; at most one review per (booking, user).
type Review struct {
	ID        int64     `json:"id"`
	BookingID int64     `json:"booking_id" gorm:"uniqueIndex:idx_booking_user_review"`
	UserID    int64     `json:"user_id" gorm:"uniqueIndex:idx_booking_user_review"`
	HotelID   int64     `json:"hotel_id"`
	Rating    int       `json:"rating" validate:"required,gte=1,lte=5"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
