package model

import "time"

type DTO struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Principal is the authenticated identity attached to a request after the
// token has been verified. The access gate reads Role off it.
type Principal struct {
	UserId   uint   `json:"userId"`
	Role     string `json:"role"`
	Active   bool   `json:"active"`
	Verified bool   `json:"verified"`
}

type TokenData struct {
	AccessToken string `json:"accessToken"`
}
