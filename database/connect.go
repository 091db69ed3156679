package database

import (
	"fmt"
	"strconv"

	"movie_ticket_booking/config"
	"movie_ticket_booking/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	p := config.ConfigOr("DB_PORT", "5432")
	port, err := strconv.ParseUint(p, 10, 32)
	if err != nil {
		panic("failed to parse database port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		config.Config("DB_HOST"), port, config.Config("DB_USER"),
		config.Config("DB_PASSWORD"), config.Config("DB_NAME"))

	// TranslateError so duplicate keys surface as gorm.ErrDuplicatedKey and
	// the global error handler can answer with a client safe 409.
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		panic("failed to connect database")
	}

	fmt.Println("Connection Opened to Database")
	if err := Migrate(DB); err != nil {
		panic("failed to migrate database")
	}
	fmt.Println("Database Migrated")

	SeedData(DB)
}

// Migrate creates or updates the schema for every record type, including the
// foreign key constraints the delete endpoints rely on.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.City{},
		&model.Movie{},
		&model.Theatre{},
		&model.Release{},
		&model.ReleaseShowtime{},
		&model.Booking{},
		&model.BookingSeat{},
		&model.Review{},
	)
}
