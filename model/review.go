package model

type Review struct {
	DTO
	Review  string  `gorm:"type:text;not null" validate:"required,min=2,max=180" json:"review"`
	Rating  float64 `gorm:"not null" validate:"required,min=1,max=10" json:"rating"`
	MovieId uint    `gorm:"not null;uniqueIndex:idx_movie_user" json:"movieId"`
	UserId  uint    `gorm:"not null;uniqueIndex:idx_movie_user" json:"userId"`

	Movie Movie `gorm:"foreignKey:MovieId;constraint:OnDelete:CASCADE" json:"movie"`
	User  User  `gorm:"foreignKey:UserId" json:"user"`
}

type CreateReviewInput struct {
	Review string  `json:"review" validate:"required,min=2,max=180"`
	Rating float64 `json:"rating" validate:"required,min=1,max=10"`
}

type EditReviewInput struct {
	Review *string  `json:"review" validate:"omitempty,min=2,max=180"`
	Rating *float64 `json:"rating" validate:"omitempty,min=1,max=10"`
}

// MovieReviewStats is the aggregate recomputed after review writes.
type MovieReviewStats struct {
	NumReviews int     `json:"numReviews"`
	AvgReviews float64 `json:"avgReviews"`
}
