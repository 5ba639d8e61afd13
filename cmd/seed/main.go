package main

import (
	"log"
	"os"

	"batoo/internal/database"
	"batoo/internal/domain"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "batoo.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Listing{},
		&domain.Booking{},
		&domain.Message{},
		&domain.Review{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (child tables first to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM messages")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM listings")
	db.Exec("DELETE FROM users")

	log.Println("Creating users...")

	ownerHash, _ := bcrypt.GenerateFromPassword([]byte("owner123"), bcrypt.DefaultCost)
	owner := domain.User{
		Email:        "owner@batoo.app",
		PasswordHash: string(ownerHash),
		Name:         "Marina Owner",
	}
	if err := db.Create(&owner).Error; err != nil {
		log.Fatal("Failed to create owner:", err)
	}

	guestHash, _ := bcrypt.GenerateFromPassword([]byte("guest123"), bcrypt.DefaultCost)
	guest := domain.User{
		Email:        "guest@batoo.app",
		PasswordHash: string(guestHash),
		Name:         "Sam Guest",
	}
	if err := db.Create(&guest).Error; err != nil {
		log.Fatal("Failed to create guest:", err)
	}

	log.Println("Creating listings...")

	listings := []domain.Listing{
		{
			OwnerID:      owner.ID,
			Name:         "Sunset Pearl",
			Type:         domain.ListingYacht,
			Description:  "52ft motor yacht with flybridge, sleeps six.",
			Price:        1200,
			PricePerUnit: "day",
			Location:     "Marina Bay",
			Available:    true,
		},
		{
			OwnerID:      owner.ID,
			Name:         "Wave Runner Duo",
			Type:         domain.ListingJetski,
			Description:  "Two Yamaha waverunners, life jackets included.",
			Price:        180,
			PricePerUnit: "day",
			Location:     "North Beach",
			Available:    true,
		},
		{
			OwnerID:      owner.ID,
			Name:         "Sunrise Fishing Trip",
			Type:         domain.ListingExperience,
			Description:  "Guided deep-sea fishing, gear and bait provided.",
			Price:        350,
			PricePerUnit: "day",
			Location:     "East Pier",
			Available:    true,
		},
	}
	for i := range listings {
		if err := db.Create(&listings[i]).Error; err != nil {
			log.Fatal("Failed to create listing:", err)
		}
	}

	log.Printf("Seed complete: %d users, %d listings", 2, len(listings))
}
