package review

import (
	"context"
	"errors"
	"strings"
	"time"

	"hotelbooking/internal/domain"

	"gorm.io/gorm"
)

// BookingGate is the slice of the booking store the review path needs.
type BookingGate interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, rv *domain.Review) error
	ExistsForBookingAndUser(ctx context.Context, bookingID, userID int64) (bool, error)
	GetByHotel(ctx context.Context, hotelID int64, limit, offset int) ([]domain.Review, error)
}

type Service struct {
	reviews  ReviewRepository
	bookings BookingGate
	now      func() time.Time
}

func NewService(reviews ReviewRepository, bookings BookingGate) *Service {
	return &Service{reviews: reviews, bookings: bookings, now: time.Now}
}

// Create accepts a review only for the booking's owner, only once, and only
// after the checkout date has passed on a still-confirmed booking.
func (s *Service) Create(ctx context.Context, userID int64, req CreateReviewRequest) (*domain.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRequest
	}

	b, err := s.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if b.UserID != userID {
		return nil, ErrForbidden
	}

	now := s.now().UTC()
	if b.Status != domain.BookingConfirmed || now.Before(b.CheckOut) {
		return nil, ErrNotEligible
	}

	exists, err := s.reviews.ExistsForBookingAndUser(ctx, req.BookingID, userID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyReviewed
	}

	rv := &domain.Review{
		BookingID: req.BookingID,
		UserID:    userID,
		HotelID:   b.HotelID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	if err := s.reviews.Create(ctx, rv); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrAlreadyReviewed
		}
		return nil, err
	}
	return rv, nil
}

func (s *Service) ListByHotel(ctx context.Context, hotelID int64, limit, offset int) ([]domain.Review, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.reviews.GetByHotel(ctx, hotelID, limit, offset)
}

func isUniqueViolation(err error) bool {
	s := err.Error()
	return strings.Contains(s, "duplicate key value violates unique constraint") ||
		strings.Contains(s, "UNIQUE constraint failed") ||
		strings.Contains(s, "23505")
}
