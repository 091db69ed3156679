package model

type User struct {
	DTO
	Name     string `gorm:"not null" validate:"required" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" validate:"required,email" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"not null;default:user" validate:"required,oneof=user admin" json:"role"`
	Active   bool   `gorm:"not null;default:true" json:"active"`
	Verified bool   `gorm:"not null;default:false" json:"verified"`
}

type SignupInput struct {
	Name     string `json:"name" validate:"required,min=2,max=60"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
