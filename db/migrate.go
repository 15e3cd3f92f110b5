package db

import (
	"fmt"
	"log"

	"github.com/kunalsaini/home-service-app/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Provider{},
		&models.Coupon{},
		&models.Booking{},
		&models.Review{},
		&models.WishlistItem{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
