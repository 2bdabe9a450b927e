package main

import (
	"fmt"
	"log"
	"os"

	"hotelbooking/internal/database"
	"hotelbooking/internal/domain"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "hotelbooking.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Hotel{},
		&domain.Room{},
		&domain.Booking{},
		&domain.Review{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM hotels")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	owners := make([]domain.User, 0, 2)
	for i, email := range []string{"marat@hotels.kz", "aliya@hotels.kz"} {
		hash, _ := bcrypt.GenerateFromPassword([]byte("owner123"), bcrypt.DefaultCost)
		owner := domain.User{
			Name:         fmt.Sprintf("Owner %d", i+1),
			Email:        email,
			PasswordHash: string(hash),
			Role:         domain.RoleOwner,
			Phone:        fmt.Sprintf("+7 777 200 10%02d", i+1),
		}
		db.Create(&owner)
		owners = append(owners, owner)
		log.Printf("Owner created: %s / owner123", email)
	}

	customers := make([]domain.User, 0, 3)
	for i, email := range []string{"asel@mail.kz", "bekzat@gmail.com", "dina@yandex.kz"} {
		hash, _ := bcrypt.GenerateFromPassword([]byte("guest123"), bcrypt.DefaultCost)
		customer := domain.User{
			Name:         fmt.Sprintf("Guest %d", i+1),
			Email:        email,
			PasswordHash: string(hash),
			Role:         domain.RoleCustomer,
			Phone:        fmt.Sprintf("+7 777 123 45%02d", i+67),
		}
		db.Create(&customer)
		customers = append(customers, customer)
		log.Printf("Customer created: %s / guest123", email)
	}

	// ================== HOTELS & ROOMS ==================
	log.Println("Creating hotels...")

	seedHotels(db, owners)

	log.Println("Seed complete.")
}

func seedHotels(db *gorm.DB, owners []domain.User) {
	hotels := []struct {
		hotel domain.Hotel
		rooms []domain.Room
	}{
		{
			hotel: domain.Hotel{
				OwnerID:     owners[0].ID,
				Name:        "Almaty Grand",
				Description: "City-centre hotel near Panfilov Park",
				City:        "Almaty",
				Country:     "Kazakhstan",
				Amenities:   []string{"wifi", "pool", "parking"},
			},
			rooms: []domain.Room{
				{RoomNumber: "101", RoomType: "Standard", PricePerNight: 18000, MaxOccupancy: 2},
				{RoomNumber: "102", RoomType: "Standard", PricePerNight: 18000, MaxOccupancy: 2},
				{RoomNumber: "201", RoomType: "Deluxe", PricePerNight: 32000, MaxOccupancy: 3},
				{RoomNumber: "301", RoomType: "Suite", PricePerNight: 55000, MaxOccupancy: 4},
			},
		},
		{
			hotel: domain.Hotel{
				OwnerID:     owners[0].ID,
				Name:        "Astana Riverside",
				Description: "Business hotel on the left bank",
				City:        "Astana",
				Country:     "Kazakhstan",
				Amenities:   []string{"wifi", "gym", "breakfast"},
			},
			rooms: []domain.Room{
				{RoomNumber: "1", RoomType: "Standard", PricePerNight: 22000, MaxOccupancy: 2},
				{RoomNumber: "2", RoomType: "Deluxe", PricePerNight: 40000, MaxOccupancy: 3},
			},
		},
		{
			hotel: domain.Hotel{
				OwnerID:     owners[1].ID,
				Name:        "Shymkent Garden Inn",
				Description: "Quiet garden hotel close to the old town",
				City:        "Shymkent",
				Country:     "Kazakhstan",
				Amenities:   []string{"wifi", "parking"},
			},
			rooms: []domain.Room{
				{RoomNumber: "A1", RoomType: "Standard", PricePerNight: 9000, MaxOccupancy: 2},
				{RoomNumber: "A2", RoomType: "Standard", PricePerNight: 9000, MaxOccupancy: 2},
				{RoomNumber: "B1", RoomType: "Family", PricePerNight: 15000, MaxOccupancy: 5},
			},
		},
	}

	for _, entry := range hotels {
		h := entry.hotel
		db.Create(&h)
		for _, room := range entry.rooms {
			room.HotelID = h.ID
			db.Create(&room)
		}
		log.Printf("Hotel created: %s (%d rooms)", h.Name, len(entry.rooms))
	}
}
