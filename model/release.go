package model

import "time"

type ScreenType string

const (
	ScreenStandard ScreenType = "standard"
	Screen3D       ScreenType = "3d"
	ScreenImax     ScreenType = "imax"
	Screen4DX      ScreenType = "4dx"
)

func ValidScreen(s string) bool {
	switch ScreenType(s) {
	case ScreenStandard, Screen3D, ScreenImax, Screen4DX:
		return true
	}
	return false
}

// Release is one movie playing at one theatre in one screen format and
// language. The (theatre, movie, screen, language) tuple is unique; showtime
// collisions per theatre are ruled out on the showtime rows.
type Release struct {
	DTO
	MovieId   uint   `gorm:"not null;uniqueIndex:idx_release_combo" json:"movieId"`
	TheatreId uint   `gorm:"not null;uniqueIndex:idx_release_combo" json:"theatreId"`
	Screen    string `gorm:"not null;uniqueIndex:idx_release_combo" validate:"required,oneof=standard 3d imax 4dx" json:"screen"`
	Language  string `gorm:"not null;uniqueIndex:idx_release_combo" validate:"required" json:"language"`
	// Slug mirrors the movie slug so lookups skip a join.
	Slug        string    `gorm:"not null;index" json:"slug"`
	ReleaseDate time.Time `json:"releaseDate"`

	// per seat class price table
	PriceNormal    float64 `gorm:"not null" validate:"required,gt=0" json:"priceNormal"`
	PriceExecutive float64 `gorm:"not null" validate:"required,gt=0" json:"priceExecutive"`
	PriceVip       float64 `gorm:"not null" validate:"required,gt=0" json:"priceVip"`

	Movie     Movie             `gorm:"foreignKey:MovieId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"movie"`
	Theatre   Theatre           `gorm:"foreignKey:TheatreId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"theatre"`
	Showtimes []ReleaseShowtime `gorm:"foreignKey:ReleaseId;constraint:OnDelete:CASCADE" json:"showtimes"`
}

// ReleaseShowtime is one showing instant of a release. TheatreId is
// denormalized from the release so the (theatre, showtime) uniqueness can be
// a plain index instead of application logic.
type ReleaseShowtime struct {
	DTO
	ReleaseId uint      `gorm:"not null;index" json:"releaseId"`
	TheatreId uint      `gorm:"not null;uniqueIndex:idx_theatre_showtime" json:"theatreId"`
	ShowTime  time.Time `gorm:"not null;uniqueIndex:idx_theatre_showtime" json:"showTime"`
}

type ReleasePrices struct {
	Normal    float64 `json:"normal" validate:"required,gt=0"`
	Executive float64 `json:"executive" validate:"required,gt=0"`
	Vip       float64 `json:"vip" validate:"required,gt=0"`
}

type CreateReleaseInput struct {
	Movie       uint          `json:"movie" validate:"required"`
	Theatre     uint          `json:"theatre" validate:"required"`
	Screen      string        `json:"screen" validate:"required,oneof=standard 3d imax 4dx"`
	Language    string        `json:"language" validate:"required"`
	Price       ReleasePrices `json:"price" validate:"required"`
	ReleaseDate time.Time     `json:"releaseDate"`
	Showtimes   []time.Time   `json:"movieDateAndTime" validate:"required,min=1"`
}

type EditReleaseInput struct {
	Screen      *string        `json:"screen" validate:"omitempty,oneof=standard 3d imax 4dx"`
	Language    *string        `json:"language"`
	Price       *ReleasePrices `json:"price"`
	ReleaseDate *time.Time     `json:"releaseDate"`
	Showtimes   *[]time.Time   `json:"movieDateAndTime" validate:"omitempty,min=1"`
}

// RelatedRelease is the slim card the related listing returns: one release
// per movie that shares a genre with the anchor movie.
type RelatedRelease struct {
	Id    uint             `json:"id"`
	Slug  string           `json:"slug"`
	Movie RelatedMovieCard `json:"movie"`
}

type RelatedMovieCard struct {
	Image          string  `json:"image"`
	Title          string  `json:"title"`
	RatingsAverage float64 `json:"ratingsAverage"`
	Slug           string  `json:"slug"`
}

// TheatreAvailability is one theatre level entry of the availability lookup.
type TheatreAvailability struct {
	TheatreId          uint          `json:"theatreId"`
	Theatre            string        `json:"theatre"`
	Locality           string        `json:"locality"`
	Title              string        `json:"title"`
	Certification      string        `json:"certification"`
	Genres             []string      `json:"genres"`
	RatingsQuantity    int           `json:"ratingsQuantity"`
	RatingsAverage     float64       `json:"ratingsAverage"`
	TicketCancellation bool          `json:"ticketCancellation"`
	FoodAndBeverages   bool          `json:"foodAndBeverages"`
	MTicket            bool          `json:"mTicket"`
	Price              ReleasePrices `json:"price"`
	Timings            []time.Time   `json:"timings"`
}
