package domain

import "time"

type Hotel struct {
	ID           int64     `json:"id"`
	OwnerID      int64     `json:"owner_id"`
	Name         string    `json:"name" validate:"required"`
	Description  string    `json:"description,omitempty"`
	City         string    `json:"city" validate:"required"`
	Country      string    `json:"country" validate:"required"`
	Amenities    []string  `json:"amenities,omitempty" gorm:"serializer:json"`
	Rating       float64   `json:"rating"`
	TotalReviews int       `json:"total_reviews"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Rooms []Room `json:"rooms,omitempty"`
}
