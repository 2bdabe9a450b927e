package repository

import (
	"context"
	"time"

	"hotelbooking/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// BookingTx scopes the availability check and the insert of one booking to a
// single database transaction. Callers must defer Rollback; Rollback after a
// successful Commit is a no-op.
type BookingTx struct {
	tx        *gorm.DB
	committed bool
}

func (r *BookingRepository) Begin(ctx context.Context) (*BookingTx, error) {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &BookingTx{tx: tx}, nil
}

func (t *BookingTx) Commit() error {
	if err := t.tx.Commit().Error; err != nil {
		return err
	}
	t.committed = true
	return nil
}

func (t *BookingTx) Rollback() {
	if !t.committed {
		t.tx.Rollback()
	}
}

// RoomForUpdate loads the room and, on PostgreSQL, locks its row so that
// concurrent check-then-insert sequences on the same room serialize. On
// SQLite the transaction itself already holds the write lock: connections
// are opened with _txlock=immediate (see database.Connect).
func (t *BookingTx) RoomForUpdate(roomID int64) (*domain.Room, error) {
	q := t.tx
	if t.tx.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var room domain.Room
	if err := q.First(&room, roomID).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (t *BookingTx) HotelOwnerID(hotelID int64) (int64, error) {
	var ownerID int64
	tx := t.tx.
		Table("hotels").
		Select("owner_id").
		Where("id = ?", hotelID).
		Scan(&ownerID)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return ownerID, nil
}

// HasOverlap reports whether any confirmed booking on the room intersects
// [checkIn, checkOut). Two half-open ranges overlap iff
// existing.check_in < checkOut AND existing.check_out > checkIn.
func (t *BookingTx) HasOverlap(roomID int64, checkIn, checkOut time.Time) (bool, error) {
	var cnt int64
	err := t.tx.
		Model(&domain.Booking{}).
		Where("room_id = ?", roomID).
		Where("status = ?", domain.BookingConfirmed).
		Where("check_in < ? AND check_out > ?", checkOut, checkIn).
		Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (t *BookingTx) Insert(b *domain.Booking) error {
	return t.tx.Create(b).Error
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	tx := r.db.WithContext(ctx).First(&b, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &b, nil
}

type UserBookingDetails struct {
	ID          int64     `gorm:"column:id"`
	Reference   string    `gorm:"column:reference"`
	RoomID      int64     `gorm:"column:room_id"`
	HotelID     int64     `gorm:"column:hotel_id"`
	HotelName   string    `gorm:"column:hotel_name"`
	RoomNumber  string    `gorm:"column:room_number"`
	RoomType    string    `gorm:"column:room_type"`
	CheckIn     time.Time `gorm:"column:check_in"`
	CheckOut    time.Time `gorm:"column:check_out"`
	Guests      int       `gorm:"column:guests"`
	TotalPrice  float64   `gorm:"column:total_price"`
	Status      string    `gorm:"column:status"`
	BookingDate time.Time `gorm:"column:booking_date"`
}

func (r *BookingRepository) GetUserBookingsWithDetails(ctx context.Context, userID int64, status string) ([]UserBookingDetails, error) {
	q := `
SELECT
  b.id,
  b.reference,
  b.room_id,
  b.hotel_id,
  h.name AS hotel_name,
  rm.room_number,
  rm.room_type,
  b.check_in,
  b.check_out,
  b.guests,
  b.total_price,
  b.status,
  b.booking_date
FROM bookings b
JOIN hotels h ON h.id = b.hotel_id
JOIN rooms rm ON rm.id = b.room_id
WHERE b.user_id = ?
`
	args := []any{userID}
	if status != "" {
		q += "  AND b.status = ?\n"
		args = append(args, status)
	}
	q += "ORDER BY b.booking_date DESC"

	var rows []UserBookingDetails
	tx := r.db.WithContext(ctx).Raw(q, args...).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

func (r *BookingRepository) Cancel(ctx context.Context, bookingID int64, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ?", bookingID).
		Updates(map[string]any{
			"status":       domain.BookingCancelled,
			"cancelled_at": at,
		}).Error
}
