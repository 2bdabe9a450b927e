package catalog

type CreateHotelRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	City        string   `json:"city" binding:"required"`
	Country     string   `json:"country" binding:"required"`
	Amenities   []string `json:"amenities"`
}

type AddRoomRequest struct {
	RoomNumber    string  `json:"roomNumber" binding:"required"`
	RoomType      string  `json:"roomType"`
	PricePerNight float64 `json:"pricePerNight" binding:"required,gt=0"`
	MaxOccupancy  int     `json:"maxOccupancy" binding:"required,gt=0"`
}
