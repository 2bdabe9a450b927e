package domain

import "time"

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking check-in/check-out are calendar dates stored at midnight UTC.
// Invariant: per room, confirmed bookings never overlap on [check_in, check_out).
type Booking struct {
	ID          int64         `json:"id"`
	Reference   string        `json:"reference" gorm:"uniqueIndex"`
	RoomID      int64         `json:"room_id"`
	HotelID     int64         `json:"hotel_id"`
	UserID      int64         `json:"user_id"`
	CheckIn     time.Time     `json:"check_in"`
	CheckOut    time.Time     `json:"check_out"`
	Guests      int           `json:"guests"`
	TotalPrice  float64       `json:"total_price"`
	Status      BookingStatus `json:"status"`
	BookingDate time.Time     `json:"booking_date"`
	CancelledAt *time.Time    `json:"cancelled_at,omitempty"`

	Room  *Room  `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	Hotel *Hotel `json:"hotel,omitempty" gorm:"foreignKey:HotelID"`
}

func (b *Booking) Nights() int {
	return int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
}
