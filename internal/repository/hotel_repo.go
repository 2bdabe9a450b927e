package repository

import (
	"context"
	"encoding/json"
	"strings"

	"hotelbooking/internal/domain"

	"gorm.io/gorm"
)

type HotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) *HotelRepository {
	return &HotelRepository{db: db}
}

// HotelFilter carries the listing query parameters. Price bounds apply to the
// hotel's cheapest room, not to any individual room.
type HotelFilter struct {
	City      string
	Country   string
	MinRating *float64
	MinPrice  *float64
	MaxPrice  *float64
}

type HotelSummary struct {
	ID               int64    `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description,omitempty"`
	City             string   `json:"city"`
	Country          string   `json:"country"`
	Amenities        []string `json:"amenities"`
	Rating           float64  `json:"rating"`
	TotalReviews     int      `json:"totalReviews"`
	MinPricePerNight float64  `json:"minPricePerNight"`
}

type hotelSummaryRow struct {
	ID               int64   `gorm:"column:id"`
	Name             string  `gorm:"column:name"`
	Description      string  `gorm:"column:description"`
	City             string  `gorm:"column:city"`
	Country          string  `gorm:"column:country"`
	Amenities        string  `gorm:"column:amenities"`
	Rating           float64 `gorm:"column:rating"`
	TotalReviews     int     `gorm:"column:total_reviews"`
	MinPricePerNight float64 `gorm:"column:min_price_per_night"`
}

func (r *HotelRepository) Create(ctx context.Context, h *domain.Hotel) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *HotelRepository) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	var h domain.Hotel
	tx := r.db.WithContext(ctx).Preload("Rooms").First(&h, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &h, nil
}

// List returns hotels matching the filter. Hotels without rooms never appear:
// the INNER JOIN drops them before the HAVING clause is evaluated.
func (r *HotelRepository) List(ctx context.Context, f HotelFilter) ([]HotelSummary, error) {
	q := `
SELECT
  h.id,
  h.name,
  h.description,
  h.city,
  h.country,
  h.amenities,
  h.rating,
  h.total_reviews,
  MIN(rm.price_per_night) AS min_price_per_night
FROM hotels h
JOIN rooms rm ON rm.hotel_id = h.id
`
	var (
		where  []string
		having []string
		args   []any
	)

	if f.City != "" {
		where = append(where, "LOWER(h.city) LIKE ?")
		args = append(args, "%"+strings.ToLower(f.City)+"%")
	}
	if f.Country != "" {
		where = append(where, "LOWER(h.country) LIKE ?")
		args = append(args, "%"+strings.ToLower(f.Country)+"%")
	}
	if f.MinRating != nil {
		where = append(where, "h.rating >= ?")
		args = append(args, *f.MinRating)
	}
	if len(where) > 0 {
		q += "WHERE " + strings.Join(where, " AND ") + "\n"
	}

	q += "GROUP BY h.id, h.name, h.description, h.city, h.country, h.amenities, h.rating, h.total_reviews\n"

	if f.MinPrice != nil {
		having = append(having, "MIN(rm.price_per_night) >= ?")
		args = append(args, *f.MinPrice)
	}
	if f.MaxPrice != nil {
		having = append(having, "MIN(rm.price_per_night) <= ?")
		args = append(args, *f.MaxPrice)
	}
	if len(having) > 0 {
		q += "HAVING " + strings.Join(having, " AND ") + "\n"
	}

	q += "ORDER BY h.id"

	var rows []hotelSummaryRow
	tx := r.db.WithContext(ctx).Raw(q, args...).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]HotelSummary, 0, len(rows))
	for _, row := range rows {
		amenities := []string{}
		if row.Amenities != "" {
			_ = json.Unmarshal([]byte(row.Amenities), &amenities)
		}
		out = append(out, HotelSummary{
			ID:               row.ID,
			Name:             row.Name,
			Description:      row.Description,
			City:             row.City,
			Country:          row.Country,
			Amenities:        amenities,
			Rating:           row.Rating,
			TotalReviews:     row.TotalReviews,
			MinPricePerNight: row.MinPricePerNight,
		})
	}
	return out, nil
}
