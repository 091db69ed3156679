package model

import "time"

type Booking struct {
	DTO
	Code      string `gorm:"size:16;uniqueIndex" json:"code"`
	UserId    uint   `gorm:"not null;index" json:"userId"`
	MovieId   uint   `gorm:"not null" json:"movieId"`
	TheatreId uint   `gorm:"not null" json:"theatreId"`

	SeatType    string    `gorm:"not null" validate:"required,oneof=normal executive vip" json:"seatType"`
	TicketPrice float64   `gorm:"not null" validate:"required,gt=0" json:"ticketPrice"`
	ShowDate    time.Time `gorm:"not null" json:"showDate"`
	ShowTime    time.Time `gorm:"not null" json:"showTime"`

	Seats   []BookingSeat `gorm:"foreignKey:BookingId" json:"seats"`
	Movie   Movie         `gorm:"foreignKey:MovieId" json:"movie"`
	Theatre Theatre       `gorm:"foreignKey:TheatreId" json:"theatre"`

	// Total is never persisted, it is recomputed on every read.
	Total float64 `gorm:"-" json:"totalPrice"`
}

// TotalPrice derives the booking total from seat count and ticket price.
func (b *Booking) TotalPrice() float64 {
	return float64(len(b.Seats)) * b.TicketPrice
}

type BookingSeat struct {
	ID        uint `gorm:"primaryKey" json:"-"`
	BookingId uint `gorm:"not null;index" json:"-"`
	Row       int  `gorm:"not null" json:"row"`
	Col       int  `gorm:"not null" json:"col"`
}

type SeatInput struct {
	Row int `json:"row" validate:"required,gt=0"`
	Col int `json:"col" validate:"required,gt=0"`
}

type CreateBookingInput struct {
	Movie       uint        `json:"movie" validate:"required"`
	Theatre     uint        `json:"theatre" validate:"required"`
	SeatType    string      `json:"seatType" validate:"required,oneof=normal executive vip"`
	Seats       []SeatInput `json:"seats" validate:"required,min=1,dive"`
	TicketPrice float64     `json:"ticketPrice" validate:"required,gt=0"`
	ShowDate    time.Time   `json:"showDate" validate:"required"`
	ShowTime    time.Time   `json:"showTime" validate:"required"`
}
