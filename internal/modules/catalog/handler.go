package catalog

import (
	"net/http"
	"strconv"

	"hotelbooking/internal/pkg/response"
	"hotelbooking/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires the read path; owner-only write routes are registered
// separately so the role middleware can be applied per group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/hotels", h.ListHotels)
	rg.GET("/hotels/:hotelId", h.GetHotel)
}

func (h *Handler) RegisterOwnerRoutes(rg *gin.RouterGroup) {
	rg.POST("/hotels", h.CreateHotel)
	rg.POST("/hotels/:hotelId/rooms", h.AddRoom)
}

func (h *Handler) CreateHotel(c *gin.Context) {
	var req CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST")
		return
	}

	hotel, err := h.service.CreateHotel(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"id":           hotel.ID,
		"ownerId":      hotel.OwnerID,
		"name":         hotel.Name,
		"description":  hotel.Description,
		"city":         hotel.City,
		"country":      hotel.Country,
		"amenities":    hotel.Amenities,
		"rating":       hotel.Rating,
		"totalReviews": hotel.TotalReviews,
	})
}

func (h *Handler) AddRoom(c *gin.Context) {
	hotelID, err := strconv.ParseInt(c.Param("hotelId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "HOTEL_NOT_FOUND")
		return
	}

	var req AddRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST")
		return
	}

	room, err := h.service.AddRoom(c.Request.Context(), c.GetInt64("user_id"), hotelID, req)
	if err != nil {
		switch err {
		case ErrHotelNotFound:
			response.Error(c, http.StatusNotFound, "HOTEL_NOT_FOUND")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN")
		case ErrRoomExists:
			response.Error(c, http.StatusBadRequest, "ROOM_ALREADY_EXISTS")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"id":            room.ID,
		"hotelId":       room.HotelID,
		"roomNumber":    room.RoomNumber,
		"roomType":      room.RoomType,
		"pricePerNight": room.PricePerNight,
		"maxOccupancy":  room.MaxOccupancy,
	})
}

func (h *Handler) ListHotels(c *gin.Context) {
	var f repository.HotelFilter
	f.City = c.Query("city")
	f.Country = c.Query("country")

	var parseErr bool
	f.MinRating = parseFloatQuery(c, "minRating", &parseErr)
	f.MinPrice = parseFloatQuery(c, "minPrice", &parseErr)
	f.MaxPrice = parseFloatQuery(c, "maxPrice", &parseErr)
	if parseErr {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST")
		return
	}

	hotels, err := h.service.ListHotels(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR")
		return
	}

	response.Success(c, http.StatusOK, hotels)
}

func (h *Handler) GetHotel(c *gin.Context) {
	hotelID, err := strconv.ParseInt(c.Param("hotelId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "HOTEL_NOT_FOUND")
		return
	}

	hotel, err := h.service.GetHotel(c.Request.Context(), hotelID)
	if err != nil {
		switch err {
		case ErrHotelNotFound:
			response.Error(c, http.StatusNotFound, "HOTEL_NOT_FOUND")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR")
		}
		return
	}

	rooms := make([]gin.H, 0, len(hotel.Rooms))
	for _, r := range hotel.Rooms {
		rooms = append(rooms, gin.H{
			"id":            r.ID,
			"roomNumber":    r.RoomNumber,
			"roomType":      r.RoomType,
			"pricePerNight": r.PricePerNight,
			"maxOccupancy":  r.MaxOccupancy,
		})
	}

	response.Success(c, http.StatusOK, gin.H{
		"id":           hotel.ID,
		"ownerId":      hotel.OwnerID,
		"name":         hotel.Name,
		"description":  hotel.Description,
		"city":         hotel.City,
		"country":      hotel.Country,
		"amenities":    hotel.Amenities,
		"rating":       hotel.Rating,
		"totalReviews": hotel.TotalReviews,
		"rooms":        rooms,
	})
}

func parseFloatQuery(c *gin.Context, name string, parseErr *bool) *float64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*parseErr = true
		return nil
	}
	return &v
}
