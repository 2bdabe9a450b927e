package booking

import (
	"net/http"
	"strconv"
	"time"

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
	rg.POST("/bookings", h.CreateBooking)
	rg.GET("/bookings", h.GetMyBookings)
	rg.PUT("/bookings/:bookingId/cancel", h.CancelBooking)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST")
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch err {
		case ErrInvalidDates:
			response.Error(c, http.StatusBadRequest, "INVALID_DATES")
		case ErrRoomNotFound:
			response.Error(c, http.StatusNotFound, "ROOM_NOT_FOUND")
		case ErrSelfBooking:
			response.Error(c, http.StatusForbidden, "FORBIDDEN")
		case ErrInvalidCapacity:
			response.Error(c, http.StatusBadRequest, "INVALID_CAPACITY")
		case ErrNotAvailable:
			response.Error(c, http.StatusBadRequest, "ROOM_NOT_AVAILABLE")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"id":           b.ID,
		"reference":    b.Reference,
		"userId":       b.UserID,
		"roomId":       b.RoomID,
		"hotelId":      b.HotelID,
		"checkInDate":  FormatDate(b.CheckIn),
		"checkOutDate": FormatDate(b.CheckOut),
		"guests":       b.Guests,
		"totalPrice":   b.TotalPrice,
		"status":       b.Status,
		"bookingDate":  b.BookingDate.Format(time.RFC3339),
	})
}

func (h *Handler) GetMyBookings(c *gin.Context) {
	status := c.Query("status")

	rows, err := h.service.GetMyBookings(c.Request.Context(), c.GetInt64("user_id"), status)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR")
		return
	}

	out := make([]gin.H, 0, len(rows))
	for _, r := range rows {
		out = append(out, gin.H{
			"id":           r.ID,
			"reference":    r.Reference,
			"roomId":       r.RoomID,
			"hotelId":      r.HotelID,
			"hotelName":    r.HotelName,
			"roomNumber":   r.RoomNumber,
			"roomType":     r.RoomType,
			"checkInDate":  FormatDate(r.CheckIn),
			"checkOutDate": FormatDate(r.CheckOut),
			"guests":       r.Guests,
			"totalPrice":   r.TotalPrice,
			"status":       r.Status,
			"bookingDate":  r.BookingDate.Format(time.RFC3339),
		})
	}

	response.Success(c, http.StatusOK, out)
}

func (h *Handler) CancelBooking(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND")
		return
	}

	b, err := h.service.CancelBooking(c.Request.Context(), c.GetInt64("user_id"), bookingID)
	if err != nil {
		switch err {
		case ErrBookingNotFound:
			response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN")
		case ErrAlreadyCancelled:
			response.Error(c, http.StatusBadRequest, "ALREADY_CANCELLED")
		case ErrDeadlinePassed:
			response.Error(c, http.StatusBadRequest, "CANCELLATION_DEADLINE_PASSED")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"id":          b.ID,
		"status":      b.Status,
		"cancelledAt": b.CancelledAt.Format(time.RFC3339),
	})
}
