package database

import (
	"testing"
	"time"

	"movie_ticket_booking/model"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return db
}

func seedMovieAndTheatre(t *testing.T, db *gorm.DB) (model.Movie, model.Theatre) {
	t.Helper()
	movie := model.Movie{
		Title:         "Inception",
		Slug:          "inception",
		Languages:     "english",
		Genres:        "sci-fi",
		Certification: "UA",
		Duration:      148,
		About:         "a heist inside dreams",
		ReleaseDate:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := db.Create(&movie).Error; err != nil {
		t.Fatalf("seed movie failed: %v", err)
	}

	theatre := model.Theatre{
		Name:           "Grand Plaza",
		MultiplexChain: "inox",
		Locality:       "bandra",
		City:           "mumbai",
		State:          "maharashtra",
		Pincode:        400050,
	}
	if err := db.Create(&theatre).Error; err != nil {
		t.Fatalf("seed theatre failed: %v", err)
	}
	return movie, theatre
}

func TestDeleteMovieCascadesReleasesAndShowtimes(t *testing.T) {
	db := openTestDB(t)
	movie, theatre := seedMovieAndTheatre(t, db)

	release := model.Release{
		MovieId:        movie.ID,
		TheatreId:      theatre.ID,
		Screen:         "imax",
		Language:       "english",
		Slug:           movie.Slug,
		PriceNormal:    250,
		PriceExecutive: 350,
		PriceVip:       450,
		Showtimes: []model.ReleaseShowtime{
			{TheatreId: theatre.ID, ShowTime: time.Date(2024, 6, 2, 18, 0, 0, 0, time.UTC)},
			{TheatreId: theatre.ID, ShowTime: time.Date(2024, 6, 2, 21, 0, 0, 0, time.UTC)},
		},
	}
	if err := db.Create(&release).Error; err != nil {
		t.Fatalf("seed release failed: %v", err)
	}

	if err := db.Delete(&model.Movie{}, movie.ID).Error; err != nil {
		t.Fatalf("movie delete failed: %v", err)
	}

	var releases int64
	db.Model(&model.Release{}).Count(&releases)
	if releases != 0 {
		t.Errorf("expected releases cascade deleted, %d left", releases)
	}

	var showtimes int64
	db.Model(&model.ReleaseShowtime{}).Count(&showtimes)
	if showtimes != 0 {
		t.Errorf("expected showtimes cascade deleted, %d left", showtimes)
	}
}

func TestDeleteTheatreCascadesReleasesAndShowtimes(t *testing.T) {
	db := openTestDB(t)
	movie, theatre := seedMovieAndTheatre(t, db)

	release := model.Release{
		MovieId:        movie.ID,
		TheatreId:      theatre.ID,
		Screen:         "standard",
		Language:       "english",
		Slug:           movie.Slug,
		PriceNormal:    200,
		PriceExecutive: 300,
		PriceVip:       400,
		Showtimes: []model.ReleaseShowtime{
			{TheatreId: theatre.ID, ShowTime: time.Date(2024, 6, 2, 15, 0, 0, 0, time.UTC)},
		},
	}
	if err := db.Create(&release).Error; err != nil {
		t.Fatalf("seed release failed: %v", err)
	}

	if err := db.Delete(&model.Theatre{}, theatre.ID).Error; err != nil {
		t.Fatalf("theatre delete failed: %v", err)
	}

	var showtimes int64
	db.Model(&model.ReleaseShowtime{}).Count(&showtimes)
	if showtimes != 0 {
		t.Errorf("expected showtimes cascade deleted, %d left", showtimes)
	}
}

func TestDeleteMovieRejectedWhileBooked(t *testing.T) {
	db := openTestDB(t)
	movie, theatre := seedMovieAndTheatre(t, db)

	booking := model.Booking{
		Code:        "BKG-test1",
		UserId:      1,
		MovieId:     movie.ID,
		TheatreId:   theatre.ID,
		SeatType:    "normal",
		TicketPrice: 250,
		ShowDate:    time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC),
		ShowTime:    time.Date(2024, 6, 2, 18, 0, 0, 0, time.UTC),
		Seats:       []model.BookingSeat{{Row: 1, Col: 1}},
	}
	if err := db.Create(&booking).Error; err != nil {
		t.Fatalf("seed booking failed: %v", err)
	}

	if err := db.Delete(&model.Movie{}, movie.ID).Error; err == nil {
		t.Fatal("expected delete to be rejected while a booking references the movie")
	}

	var bookings int64
	db.Model(&model.Booking{}).Count(&bookings)
	if bookings != 1 {
		t.Errorf("booking must survive the rejected delete, found %d", bookings)
	}
	var movies int64
	db.Model(&model.Movie{}).Where("id = ?", movie.ID).Count(&movies)
	if movies != 1 {
		t.Errorf("movie must survive the rejected delete, found %d", movies)
	}
}
