package booking

import (
	"context"
	"time"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/repository"
)

// Tx is the transaction-scoped resource the create path runs inside. The
// overlap check and the insert must happen on the same Tx so that concurrent
// bookings on one room serialize at the persistence layer.
type Tx interface {
	RoomForUpdate(roomID int64) (*domain.Room, error)
	HotelOwnerID(hotelID int64) (int64, error)
	HasOverlap(roomID int64, checkIn, checkOut time.Time) (bool, error)
	Insert(b *domain.Booking) error
	Commit() error
	Rollback()
}

// Store defines the persistence operations the booking engine needs.
type Store interface {
	Begin(ctx context.Context) (Tx, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetUserBookingsWithDetails(ctx context.Context, userID int64, status string) ([]repository.UserBookingDetails, error)
	Cancel(ctx context.Context, bookingID int64, at time.Time) error
}

type gormStore struct {
	repo *repository.BookingRepository
}

// NewGormStore adapts the concrete repository to the Store interface.
func NewGormStore(repo *repository.BookingRepository) Store {
	return gormStore{repo: repo}
}

func (s gormStore) Begin(ctx context.Context) (Tx, error) {
	return s.repo.Begin(ctx)
}

func (s gormStore) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s gormStore) GetUserBookingsWithDetails(ctx context.Context, userID int64, status string) ([]repository.UserBookingDetails, error) {
	return s.repo.GetUserBookingsWithDetails(ctx, userID, status)
}

func (s gormStore) Cancel(ctx context.Context, bookingID int64, at time.Time) error {
	return s.repo.Cancel(ctx, bookingID, at)
}
