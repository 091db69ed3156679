package database

import (
	"log"

	"movie_ticket_booking/config"
	"movie_ticket_booking/constants"
	"movie_ticket_booking/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	password := config.ConfigOr("ADMIN_PASSWORD", "changeme123")
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		log.Println("failed to hash admin password:", err)
		return
	}

	admin := model.User{
		Name:     "Administrator",
		Email:    config.ConfigOr("ADMIN_EMAIL", "admin@example.com"),
		Password: string(bytes),
		Role:     constants.RoleAdmin,
		Active:   true,
		Verified: true,
	}
	if err := db.Where(model.User{Email: admin.Email}).FirstOrCreate(&admin).Error; err != nil {
		log.Println("failed to seed admin user:", err)
	}

	cities := []model.City{
		{City: "mumbai"},
		{City: "delhi"},
		{City: "bengaluru"},
		{City: "hyderabad"},
		{City: "chennai"},
		{City: "kolkata"},
	}
	for _, city := range cities {
		if err := db.Where(model.City{City: city.City}).FirstOrCreate(&city).Error; err != nil {
			log.Println("failed to seed city:", city.City, "error:", err)
		}
	}
}
