package review

import (
	"net/http"
	"strconv"

	"hotelbooking/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/reviews", h.CreateReview)
}

// RegisterReadRoutes is wired on the plain authenticated group so owners can
// read reviews for their hotels too.
func (h *Handler) RegisterReadRoutes(rg *gin.RouterGroup) {
	rg.GET("/hotels/:hotelId/reviews", h.ListHotelReviews)
}

func (h *Handler) ListHotelReviews(c *gin.Context) {
	hotelID, err := strconv.ParseInt(c.Param("hotelId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	reviews, err := h.service.ListByHotel(c.Request.Context(), hotelID, limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR")
		return
	}

	items := make([]gin.H, 0, len(reviews))
	for _, rv := range reviews {
		items = append(items, gin.H{
			"id":        rv.ID,
			"userId":    rv.UserID,
			"hotelId":   rv.HotelID,
			"bookingId": rv.BookingID,
			"rating":    rv.Rating,
			"comment":   rv.Comment,
			"createdAt": rv.CreatedAt,
		})
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) CreateReview(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST")
		return
	}

	rv, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch err {
		case ErrInvalidRequest:
			response.Error(c, http.StatusBadRequest, "INVALID_REQUEST")
		case ErrBookingNotFound:
			response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN")
		case ErrNotEligible:
			response.Error(c, http.StatusBadRequest, "BOOKING_NOT_ELIGIBLE")
		case ErrAlreadyReviewed:
			response.Error(c, http.StatusBadRequest, "ALREADY_REVIEWED")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"id":        rv.ID,
		"userId":    rv.UserID,
		"hotelId":   rv.HotelID,
		"bookingId": rv.BookingID,
		"rating":    rv.Rating,
		"comment":   rv.Comment,
		"createdAt": rv.CreatedAt,
	})
}
