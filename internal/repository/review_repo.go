package repository

import (
	"context"

	"hotelbooking/internal/domain"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) ExistsForBookingAndUser(ctx context.Context, bookingID, userID int64) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&domain.Review{}).
		Where("booking_id = ? AND user_id = ?", bookingID, userID).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

// Create inserts the review and folds its rating into the hotel's running
// average inside one transaction.
func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	committed := false
	defer func() {
		if !committed {
			tx.Rollback()
		}
	}()

	if err := tx.Create(rv).Error; err != nil {
		return err
	}

	err := tx.Exec(`
UPDATE hotels
SET rating = (rating * total_reviews + ?) / (total_reviews + 1),
    total_reviews = total_reviews + 1
WHERE id = ?
`, float64(rv.Rating), rv.HotelID).Error
	if err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}
	committed = true
	return nil
}

func (r *ReviewRepository) GetByHotel(ctx context.Context, hotelID int64, limit, offset int) ([]domain.Review, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var reviews []domain.Review
	tx := r.db.WithContext(ctx).
		Where("hotel_id = ?", hotelID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&reviews)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return reviews, nil
}
