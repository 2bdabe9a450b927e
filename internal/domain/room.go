package domain

import "time"

// Room is immutable once created: no price history, no edits.
type Room struct {
	ID            int64     `json:"id"`
	HotelID       int64     `json:"hotel_id" gorm:"uniqueIndex:idx_hotel_room_number"`
	RoomNumber    string    `json:"room_number" validate:"required" gorm:"uniqueIndex:idx_hotel_room_number"`
	RoomType      string    `json:"room_type"`
	PricePerNight float64   `json:"price_per_night" validate:"required,gte=0"`
	MaxOccupancy  int       `json:"max_occupancy" validate:"required,gt=0"`
	CreatedAt     time.Time `json:"created_at"`
}
