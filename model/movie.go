package model

import "time"

type Movie struct {
	DTO
	Title string `gorm:"uniqueIndex;not null" validate:"required,min=1,max=60" json:"title"`
	// Slug is derived from the title at creation and never changes after.
	Slug          string    `gorm:"uniqueIndex;not null" json:"slug"`
	Image         string    `json:"image"`
	Poster        string    `json:"poster"`
	Languages     string    `gorm:"not null" json:"-"`
	Genres        string    `gorm:"not null" json:"-"`
	CastActors    string    `json:"-"`
	CastActresses string    `json:"-"`
	Crew          string    `json:"-"`
	Certification string    `gorm:"not null" validate:"required,oneof=U UA A S" json:"certification"`
	Duration      int       `gorm:"not null" validate:"required,gt=0" json:"duration"`
	About         string    `gorm:"type:text;not null" validate:"required,max=600" json:"about"`
	ReleaseDate   time.Time `gorm:"not null" json:"releaseDate"`

	// Derived from reviews, recomputed after every review write.
	RatingsQuantity int     `gorm:"not null;default:0" json:"ratingsQuantity"`
	RatingsAverage  float64 `gorm:"not null;default:0" json:"ratingsAverage"`
}

// MovieResponse presents the comma stored columns as arrays.
type MovieResponse struct {
	Movie
	LanguageList []string `json:"languages"`
	GenreList    []string `json:"genres"`
	Cast         CastInfo `json:"cast"`
	CrewList     []string `json:"crew"`
}

type CastInfo struct {
	Actors    []string `json:"actor"`
	Actresses []string `json:"actress"`
}

type CreateMovieInput struct {
	Title         string    `json:"title" validate:"required,min=1,max=60"`
	Image         string    `json:"image"`
	Poster        string    `json:"poster"`
	Languages     []string  `json:"languages" validate:"required,min=1,dive,required"`
	Genres        []string  `json:"genres" validate:"required,min=1,dive,required"`
	CastActors    []string  `json:"castActors"`
	CastActresses []string  `json:"castActresses"`
	Crew          []string  `json:"crew"`
	Certification string    `json:"certification" validate:"required,oneof=U UA A S"`
	Duration      int       `json:"duration" validate:"required,gt=0"`
	About         string    `json:"about" validate:"required,max=600"`
	ReleaseDate   time.Time `json:"releaseDate" validate:"required"`
}

type EditMovieInput struct {
	Image         *string    `json:"image"`
	Poster        *string    `json:"poster"`
	Languages     *[]string  `json:"languages"`
	Genres        *[]string  `json:"genres"`
	CastActors    *[]string  `json:"castActors"`
	CastActresses *[]string  `json:"castActresses"`
	Crew          *[]string  `json:"crew"`
	Certification *string    `json:"certification" validate:"omitempty,oneof=U UA A S"`
	Duration      *int       `json:"duration" validate:"omitempty,gt=0"`
	About         *string    `json:"about" validate:"omitempty,max=600"`
	ReleaseDate   *time.Time `json:"releaseDate"`
}
