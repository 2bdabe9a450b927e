package booking

import (
	"context"
	"errors"
	"math"
	"time"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// cancellation is allowed up to 24h before check-in; exactly 24h still passes
const cancellationDeadline = 24 * time.Hour

type Service struct {
	bookings Store
	now      func() time.Time
}

func NewService(bookings Store) *Service {
	return &Service{bookings: bookings, now: time.Now}
}

// CreateBooking runs the whole check-then-insert inside one transaction with
// the room row locked, so two concurrent requests for overlapping ranges on
// the same room cannot both commit.
func (s *Service) CreateBooking(ctx context.Context, userID int64, req CreateBookingRequest) (*domain.Booking, error) {
	checkIn, err := parseDate(req.CheckInDate)
	if err != nil {
		return nil, ErrInvalidDates
	}
	checkOut, err := parseDate(req.CheckOutDate)
	if err != nil {
		return nil, ErrInvalidDates
	}

	today := dateOnly(s.now().UTC())
	if checkIn.Before(today) {
		return nil, ErrInvalidDates
	}
	// zero-night stays are rejected too
	if !checkOut.After(checkIn) {
		return nil, ErrInvalidDates
	}

	tx, err := s.bookings.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	room, err := tx.RoomForUpdate(req.RoomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	ownerID, err := tx.HotelOwnerID(room.HotelID)
	if err != nil {
		return nil, err
	}
	if ownerID == userID {
		return nil, ErrSelfBooking
	}

	if req.Guests > room.MaxOccupancy {
		return nil, ErrInvalidCapacity
	}

	overlap, err := tx.HasOverlap(room.ID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	if overlap {
		return nil, ErrNotAvailable
	}

	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	total := room.PricePerNight * float64(nights)
	total = math.Round(total*100) / 100

	b := &domain.Booking{
		Reference:   uuid.NewString(),
		RoomID:      room.ID,
		HotelID:     room.HotelID,
		UserID:      userID,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Guests:      req.Guests,
		TotalPrice:  total,
		Status:      domain.BookingConfirmed,
		BookingDate: s.now().UTC(),
	}

	if err := tx.Insert(b); err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok {
			// 23505 unique, 23P01 exclusion: another writer got there first
			if pgErr.Code == "23505" || pgErr.Code == "23P01" {
				return nil, ErrNotAvailable
			}
		}
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) GetMyBookings(ctx context.Context, userID int64, status string) ([]repository.UserBookingDetails, error) {
	return s.bookings.GetUserBookingsWithDetails(ctx, userID, status)
}

// CancelBooking enforces ownership and the 24h deadline. The deadline is
// measured against check-in at midnight UTC; a diff of exactly 24h is allowed.
func (s *Service) CancelBooking(ctx context.Context, userID, bookingID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if b.UserID != userID {
		return nil, ErrForbidden
	}
	if b.Status == domain.BookingCancelled {
		return nil, ErrAlreadyCancelled
	}

	now := s.now().UTC()
	if b.CheckIn.Sub(now) < cancellationDeadline {
		return nil, ErrDeadlinePassed
	}

	if err := s.bookings.Cancel(ctx, bookingID, now); err != nil {
		return nil, err
	}

	b.Status = domain.BookingCancelled
	b.CancelledAt = &now
	return b, nil
}

func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, time.UTC)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FormatDate renders a stored calendar date back to its wire form.
func FormatDate(t time.Time) string {
	return t.UTC().Format(dateLayout)
}
