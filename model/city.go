package model

type City struct {
	DTO
	City  string `gorm:"uniqueIndex;not null" validate:"required,min=2,max=30" json:"city"`
	Image string `json:"image"`
}

type CreateCityInput struct {
	City  string `json:"city" validate:"required,min=2,max=30"`
	Image string `json:"image" validate:"omitempty,url"`
}

type EditCityInput struct {
	City  string `json:"city" validate:"required,min=2,max=30"`
	Image string `json:"image" validate:"omitempty,url"`
}
