package catalog

import (
	"context"
	"errors"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	hotels HotelRepository
	rooms  RoomRepository
}

func NewService(hotels HotelRepository, rooms RoomRepository) *Service {
	return &Service{hotels: hotels, rooms: rooms}
}

func (s *Service) CreateHotel(ctx context.Context, ownerID int64, req CreateHotelRequest) (*domain.Hotel, error) {
	amenities := req.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	hotel := &domain.Hotel{
		OwnerID:     ownerID,
		Name:        req.Name,
		Description: req.Description,
		City:        req.City,
		Country:     req.Country,
		Amenities:   amenities,
	}

	if err := s.hotels.Create(ctx, hotel); err != nil {
		return nil, err
	}
	return hotel, nil
}

func (s *Service) AddRoom(ctx context.Context, ownerID, hotelID int64, req AddRoomRequest) (*domain.Room, error) {
	hotel, err := s.hotels.GetByID(ctx, hotelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}

	if hotel.OwnerID != ownerID {
		return nil, ErrForbidden
	}

	exists, err := s.rooms.ExistsByHotelAndNumber(ctx, hotelID, req.RoomNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrRoomExists
	}

	roomType := req.RoomType
	if roomType == "" {
		roomType = "Standard"
	}

	room := &domain.Room{
		HotelID:       hotelID,
		RoomNumber:    req.RoomNumber,
		RoomType:      roomType,
		PricePerNight: req.PricePerNight,
		MaxOccupancy:  req.MaxOccupancy,
	}

	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *Service) ListHotels(ctx context.Context, f repository.HotelFilter) ([]repository.HotelSummary, error) {
	return s.hotels.List(ctx, f)
}

func (s *Service) GetHotel(ctx context.Context, hotelID int64) (*domain.Hotel, error) {
	hotel, err := s.hotels.GetByID(ctx, hotelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	return hotel, nil
}
