package catalog

import (
	"context"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/repository"
)

type HotelRepository interface {
	Create(ctx context.Context, h *domain.Hotel) error
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
	List(ctx context.Context, f repository.HotelFilter) ([]repository.HotelSummary, error)
}

type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	ExistsByHotelAndNumber(ctx context.Context, hotelID int64, roomNumber string) (bool, error)
}
