package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"hotelbooking/internal/database"
	"hotelbooking/internal/domain"
	"hotelbooking/internal/middleware"
	"hotelbooking/internal/modules/auth"
	"hotelbooking/internal/modules/booking"
	"hotelbooking/internal/modules/catalog"
	"hotelbooking/internal/modules/review"
	jwtsvc "hotelbooking/internal/pkg/jwt"
	"hotelbooking/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type Suite struct {
	router *gin.Engine
	db     *gorm.DB
}

type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *string         `json:"error"`
}

func setupSuite(t *testing.T) *Suite {
	t.Helper()

	// file-backed temp DB so concurrent requests share one database
	dsn := filepath.Join(t.TempDir(), "e2e.db")
	db, err := database.Connect(dsn)
	require.NoError(t, err, "failed to open test database")

	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Hotel{},
		&domain.Room{},
		&domain.Booking{},
		&domain.Review{},
	))

	jwt := jwtsvc.New("test_secret_key_32_characters_min", 24*time.Hour)

	userRepo := repository.NewUserRepository(db)
	hotelRepo := repository.NewHotelRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	authHandler := auth.NewHandler(auth.NewService(userRepo, jwt))
	catalogHandler := catalog.NewHandler(catalog.NewService(hotelRepo, roomRepo))
	bookingHandler := booking.NewHandler(booking.NewService(booking.NewGormStore(bookingRepo)))
	reviewHandler := review.NewHandler(review.NewService(reviewRepo, bookingRepo))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	authHandler.RegisterRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.JWTAuth(jwt))
	authHandler.RegisterProtectedRoutes(protected)
	catalogHandler.RegisterRoutes(protected)
	reviewHandler.RegisterReadRoutes(protected)

	owner := protected.Group("")
	owner.Use(middleware.OwnerOnly())
	catalogHandler.RegisterOwnerRoutes(owner)

	customer := protected.Group("")
	customer.Use(middleware.CustomerOnly())
	bookingHandler.RegisterRoutes(customer)
	reviewHandler.RegisterRoutes(customer)

	return &Suite{router: r, db: db}
}

func (s *Suite) request(t *testing.T, method, path string, body any, token string) (*httptest.ResponseRecorder, *Envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	return w, &env
}

func errorCode(env *Envelope) string {
	if env.Error == nil {
		return ""
	}
	return *env.Error
}

// signup registers a user and returns a login token.
func (s *Suite) signup(t *testing.T, name, email, role string) string {
	t.Helper()

	w, _ := s.request(t, http.MethodPost, "/api/v1/auth/signup", gin.H{
		"name":     name,
		"email":    email,
		"password": "password123",
		"role":     role,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w, env := s.request(t, http.MethodPost, "/api/v1/auth/login", gin.H{
		"email":    email,
		"password": "password123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Token)
	return data.Token
}

func (s *Suite) createHotel(t *testing.T, token, name, city string) int64 {
	t.Helper()

	w, env := s.request(t, http.MethodPost, "/api/v1/hotels", gin.H{
		"name":    name,
		"city":    city,
		"country": "Kazakhstan",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var data struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	return data.ID
}

func (s *Suite) addRoom(t *testing.T, token string, hotelID int64, number string, price float64, occupancy int) int64 {
	t.Helper()

	w, env := s.request(t, http.MethodPost, fmt.Sprintf("/api/v1/hotels/%d/rooms", hotelID), gin.H{
		"roomNumber":    number,
		"pricePerNight": price,
		"maxOccupancy":  occupancy,
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var data struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	return data.ID
}

func futureDate(days int) string {
	return time.Now().UTC().AddDate(0, 0, days).Format("2006-01-02")
}

func TestAuthFlow(t *testing.T) {
	s := setupSuite(t)

	w, env := s.request(t, http.MethodPost, "/api/v1/auth/signup", gin.H{
		"name":     "Asel",
		"email":    "asel@example.com",
		"password": "password123",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Success)

	// defaults to customer when role is omitted
	var created struct {
		Role string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "customer", created.Role)

	// duplicate email, case-insensitive
	w, env = s.request(t, http.MethodPost, "/api/v1/auth/signup", gin.H{
		"name":     "Asel Again",
		"email":    "ASEL@example.com",
		"password": "password123",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "EMAIL_ALREADY_EXISTS", errorCode(env))

	w, env = s.request(t, http.MethodPost, "/api/v1/auth/login", gin.H{
		"email":    "asel@example.com",
		"password": "wrong-password",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", errorCode(env))

	w, _ = s.request(t, http.MethodGet, "/api/v1/hotels", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := s.signup(t, "Bekzat", "bekzat@example.com", "customer")
	w, env = s.request(t, http.MethodGet, "/api/v1/auth/me", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	var me struct {
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &me))
	assert.Equal(t, "bekzat@example.com", me.Email)
	assert.Equal(t, "customer", me.Role)
}

func TestHotelAndRoomManagement(t *testing.T) {
	s := setupSuite(t)

	ownerToken := s.signup(t, "Marat", "marat@example.com", "owner")
	otherOwner := s.signup(t, "Aliya", "aliya@example.com", "owner")
	customerToken := s.signup(t, "Dina", "dina@example.com", "customer")

	hotelID := s.createHotel(t, ownerToken, "Almaty Grand", "Almaty")
	s.addRoom(t, ownerToken, hotelID, "101", 18000, 2)

	// customers cannot create hotels
	w, env := s.request(t, http.MethodPost, "/api/v1/hotels", gin.H{
		"name": "Nope", "city": "Almaty", "country": "KZ",
	}, customerToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "FORBIDDEN", errorCode(env))

	// duplicate room number within one hotel
	w, env = s.request(t, http.MethodPost, fmt.Sprintf("/api/v1/hotels/%d/rooms", hotelID), gin.H{
		"roomNumber": "101", "pricePerNight": 20000.0, "maxOccupancy": 2,
	}, ownerToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "ROOM_ALREADY_EXISTS", errorCode(env))

	// an owner cannot add rooms to someone else's hotel
	w, env = s.request(t, http.MethodPost, fmt.Sprintf("/api/v1/hotels/%d/rooms", hotelID), gin.H{
		"roomNumber": "102", "pricePerNight": 20000.0, "maxOccupancy": 2,
	}, otherOwner)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "FORBIDDEN", errorCode(env))

	w, env = s.request(t, http.MethodPost, "/api/v1/hotels/999999/rooms", gin.H{
		"roomNumber": "1", "pricePerNight": 100.0, "maxOccupancy": 1,
	}, ownerToken)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "HOTEL_NOT_FOUND", errorCode(env))
}

func TestHotelListingFilters(t *testing.T) {
	s := setupSuite(t)

	ownerToken := s.signup(t, "Marat", "marat@example.com", "owner")
	customerToken := s.signup(t, "Dina", "dina@example.com", "customer")

	cheapID := s.createHotel(t, ownerToken, "Budget Stay", "Almaty")
	s.addRoom(t, ownerToken, cheapID, "1", 100, 2)
	s.addRoom(t, ownerToken, cheapID, "2", 900, 2)

	expensiveID := s.createHotel(t, ownerToken, "Luxury Palace", "Astana")
	s.addRoom(t, ownerToken, expensiveID, "1", 5000, 2)

	// a hotel with no rooms must never show up
	s.createHotel(t, ownerToken, "Empty Shell", "Almaty")

	type summary struct {
		ID               int64   `json:"id"`
		Name             string  `json:"name"`
		MinPricePerNight float64 `json:"minPricePerNight"`
	}
	list := func(query string) []summary {
		w, env := s.request(t, http.MethodGet, "/api/v1/hotels"+query, nil, customerToken)
		require.Equal(t, http.StatusOK, w.Code)
		var out []summary
		require.NoError(t, json.Unmarshal(env.Data, &out))
		return out
	}

	all := list("")
	require.Len(t, all, 2)

	// the filter works on the cheapest room, not any room
	got := list("?minPrice=4000")
	require.Len(t, got, 1)
	assert.Equal(t, expensiveID, got[0].ID)

	got = list("?minPrice=50")
	require.Len(t, got, 2)

	got = list("?maxPrice=200")
	require.Len(t, got, 1)
	assert.Equal(t, cheapID, got[0].ID)
	assert.Equal(t, 100.0, got[0].MinPricePerNight)

	got = list("?city=alma")
	require.Len(t, got, 1)
	assert.Equal(t, cheapID, got[0].ID)

	_, env := s.request(t, http.MethodGet, "/api/v1/hotels?minPrice=abc", nil, customerToken)
	assert.Equal(t, "INVALID_REQUEST", errorCode(env))
}

func TestBookingFlow(t *testing.T) {
	s := setupSuite(t)

	ownerToken := s.signup(t, "Marat", "marat@example.com", "owner")
	customerA := s.signup(t, "Dina", "dina@example.com", "customer")
	customerB := s.signup(t, "Bekzat", "bekzat@example.com", "customer")

	hotelID := s.createHotel(t, ownerToken, "Almaty Grand", "Almaty")
	roomID := s.addRoom(t, ownerToken, hotelID, "101", 100, 2)

	book := func(token, checkIn, checkOut string, guests int) (*httptest.ResponseRecorder, *Envelope) {
		return s.request(t, http.MethodPost, "/api/v1/bookings", gin.H{
			"roomId":       roomID,
			"checkInDate":  checkIn,
			"checkOutDate": checkOut,
			"guests":       guests,
		}, token)
	}

	w, env := book(customerA, futureDate(10), futureDate(12), 2)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		ID         int64   `json:"id"`
		Reference  string  `json:"reference"`
		TotalPrice float64 `json:"totalPrice"`
		Status     string  `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, 200.0, created.TotalPrice) // 2 nights at 100
	assert.Equal(t, "confirmed", created.Status)
	assert.NotEmpty(t, created.Reference)

	// overlapping range on the same room
	w, env = book(customerB, futureDate(11), futureDate(13), 1)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "ROOM_NOT_AVAILABLE", errorCode(env))

	// back-to-back is fine: checkout day frees the room
	w, _ = book(customerB, futureDate(12), futureDate(14), 1)
	assert.Equal(t, http.StatusCreated, w.Code)

	w, env = book(customerB, futureDate(20), futureDate(20), 1)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_DATES", errorCode(env))

	w, env = book(customerB, futureDate(-1), futureDate(5), 1)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_DATES", errorCode(env))

	w, env = book(customerB, futureDate(20), futureDate(22), 5)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_CAPACITY", errorCode(env))

	w, env = s.request(t, http.MethodPost, "/api/v1/bookings", gin.H{
		"roomId": 999999, "checkInDate": futureDate(20), "checkOutDate": futureDate(22), "guests": 1,
	}, customerA)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "ROOM_NOT_FOUND", errorCode(env))

	// owners are kept off the booking endpoints entirely
	w, _ = book(ownerToken, futureDate(20), futureDate(22), 1)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// listing shows hotel and room details
	w, env = s.request(t, http.MethodGet, "/api/v1/bookings", nil, customerA)
	require.Equal(t, http.StatusOK, w.Code)
	var rows []struct {
		HotelName  string `json:"hotelName"`
		RoomNumber string `json:"roomNumber"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Almaty Grand", rows[0].HotelName)
	assert.Equal(t, "101", rows[0].RoomNumber)
}

func TestCancelFlow(t *testing.T) {
	s := setupSuite(t)

	ownerToken := s.signup(t, "Marat", "marat@example.com", "owner")
	customerA := s.signup(t, "Dina", "dina@example.com", "customer")
	customerB := s.signup(t, "Bekzat", "bekzat@example.com", "customer")

	hotelID := s.createHotel(t, ownerToken, "Almaty Grand", "Almaty")
	roomID := s.addRoom(t, ownerToken, hotelID, "101", 100, 2)

	w, env := s.request(t, http.MethodPost, "/api/v1/bookings", gin.H{
		"roomId": roomID, "checkInDate": futureDate(10), "checkOutDate": futureDate(12), "guests": 1,
	}, customerA)
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))

	cancelPath := fmt.Sprintf("/api/v1/bookings/%d/cancel", created.ID)

	// only the booking's owner may cancel
	w, env = s.request(t, http.MethodPut, cancelPath, nil, customerB)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "FORBIDDEN", errorCode(env))

	w, env = s.request(t, http.MethodPut, cancelPath, nil, customerA)
	require.Equal(t, http.StatusOK, w.Code)
	var cancelled struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &cancelled))
	assert.Equal(t, "cancelled", cancelled.Status)

	// the room is free again after cancellation
	w, _ = s.request(t, http.MethodPost, "/api/v1/bookings", gin.H{
		"roomId": roomID, "checkInDate": futureDate(10), "checkOutDate": futureDate(12), "guests": 1,
	}, customerB)
	assert.Equal(t, http.StatusCreated, w.Code)

	w, env = s.request(t, http.MethodPut, cancelPath, nil, customerA)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "ALREADY_CANCELLED", errorCode(env))

	// a booking starting today is inside the 24h window
	w, env = s.request(t, http.MethodPost, "/api/v1/bookings", gin.H{
		"roomId": roomID, "checkInDate": futureDate(0), "checkOutDate": futureDate(2), "guests": 1,
	}, customerA)
	require.Equal(t, http.StatusCreated, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &created))

	w, env = s.request(t, http.MethodPut, fmt.Sprintf("/api/v1/bookings/%d/cancel", created.ID), nil, customerA)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "CANCELLATION_DEADLINE_PASSED", errorCode(env))

	w, env = s.request(t, http.MethodPut, "/api/v1/bookings/999999/cancel", nil, customerA)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "BOOKING_NOT_FOUND", errorCode(env))
}

func TestReviewFlow(t *testing.T) {
	s := setupSuite(t)

	ownerToken := s.signup(t, "Marat", "marat@example.com", "owner")
	customerA := s.signup(t, "Dina", "dina@example.com", "customer")
	customerB := s.signup(t, "Bekzat", "bekzat@example.com", "customer")

	hotelID := s.createHotel(t, ownerToken, "Almaty Grand", "Almaty")
	roomID := s.addRoom(t, ownerToken, hotelID, "101", 100, 2)

	var dina domain.User
	require.NoError(t, s.db.Where("email = ?", "dina@example.com").First(&dina).Error)

	// a completed stay has to be planted directly, the API refuses past dates
	past := domain.Booking{
		Reference:   "ref-past-stay",
		RoomID:      roomID,
		HotelID:     hotelID,
		UserID:      dina.ID,
		CheckIn:     time.Now().UTC().AddDate(0, 0, -10).Truncate(24 * time.Hour),
		CheckOut:    time.Now().UTC().AddDate(0, 0, -8).Truncate(24 * time.Hour),
		Guests:      1,
		TotalPrice:  200,
		Status:      domain.BookingConfirmed,
		BookingDate: time.Now().UTC().AddDate(0, 0, -15),
	}
	require.NoError(t, s.db.Create(&past).Error)

	w, env := s.request(t, http.MethodPost, "/api/v1/reviews", gin.H{
		"bookingId": past.ID,
		"rating":    4,
		"comment":   "great stay",
	}, customerA)
	require.Equal(t, http.StatusCreated, w.Code)

	var rv struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &rv))
	assert.Equal(t, 4, rv.Rating)
	assert.Equal(t, "great stay", rv.Comment)

	// the hotel's running average picks up the new rating
	var hotel domain.Hotel
	require.NoError(t, s.db.First(&hotel, hotelID).Error)
	assert.Equal(t, 4.0, hotel.Rating)
	assert.Equal(t, 1, hotel.TotalReviews)

	// one review per booking
	w, env = s.request(t, http.MethodPost, "/api/v1/reviews", gin.H{
		"bookingId": past.ID, "rating": 5,
	}, customerA)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "ALREADY_REVIEWED", errorCode(env))

	// only the guest who stayed can review
	w, env = s.request(t, http.MethodPost, "/api/v1/reviews", gin.H{
		"bookingId": past.ID, "rating": 1,
	}, customerB)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "FORBIDDEN", errorCode(env))

	// an upcoming stay cannot be reviewed yet
	w, env = s.request(t, http.MethodPost, "/api/v1/bookings", gin.H{
		"roomId": roomID, "checkInDate": futureDate(10), "checkOutDate": futureDate(12), "guests": 1,
	}, customerB)
	require.Equal(t, http.StatusCreated, w.Code)
	var upcoming struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &upcoming))

	w, env = s.request(t, http.MethodPost, "/api/v1/reviews", gin.H{
		"bookingId": upcoming.ID, "rating": 5,
	}, customerB)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "BOOKING_NOT_ELIGIBLE", errorCode(env))

	w, env = s.request(t, http.MethodPost, "/api/v1/reviews", gin.H{
		"bookingId": int64(999999), "rating": 5,
	}, customerA)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "BOOKING_NOT_FOUND", errorCode(env))

	w, env = s.request(t, http.MethodGet, fmt.Sprintf("/api/v1/hotels/%d/reviews", hotelID), nil, customerB)
	require.Equal(t, http.StatusOK, w.Code)
	var reviews []struct {
		Rating int `json:"rating"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &reviews))
	require.Len(t, reviews, 1)
	assert.Equal(t, 4, reviews[0].Rating)
}

// Two clients race for the same room and dates. Exactly one booking lands and
// the loser is told the room is taken.
func TestConcurrentOverlappingBookings(t *testing.T) {
	s := setupSuite(t)

	ownerToken := s.signup(t, "Marat", "marat@example.com", "owner")
	tokenA := s.signup(t, "Dina", "dina@example.com", "customer")
	tokenB := s.signup(t, "Bekzat", "bekzat@example.com", "customer")

	hotelID := s.createHotel(t, ownerToken, "Almaty Grand", "Almaty")
	roomID := s.addRoom(t, ownerToken, hotelID, "101", 100, 2)

	body := gin.H{
		"roomId":       roomID,
		"checkInDate":  futureDate(10),
		"checkOutDate": futureDate(12),
		"guests":       1,
	}

	type outcome struct {
		status  int
		errCode string
	}
	outcomes := make([]outcome, 2)

	var wg sync.WaitGroup
	for i, token := range []string{tokenA, tokenB} {
		wg.Add(1)
		go func(i int, token string) {
			defer wg.Done()
			payload, _ := json.Marshal(body)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()
			s.router.ServeHTTP(w, req)

			var env Envelope
			_ = json.Unmarshal(w.Body.Bytes(), &env)
			outcomes[i] = outcome{status: w.Code, errCode: errorCode(&env)}
		}(i, token)
	}
	wg.Wait()

	winners, losers := 0, 0
	for _, o := range outcomes {
		switch o.status {
		case http.StatusCreated:
			winners++
		case http.StatusBadRequest:
			losers++
			assert.Equal(t, "ROOM_NOT_AVAILABLE", o.errCode)
		default:
			t.Fatalf("unexpected status %d (error=%q)", o.status, o.errCode)
		}
	}
	assert.Equal(t, 1, winners, "exactly one of the racing bookings may succeed, got %+v", outcomes)
	assert.Equal(t, 1, losers)

	var count int64
	require.NoError(t, s.db.Model(&domain.Booking{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
