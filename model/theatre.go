package model

type Theatre struct {
	DTO
	Name           string `gorm:"uniqueIndex;not null" validate:"required,min=4,max=40" json:"name"`
	MultiplexChain string `gorm:"not null" validate:"required,oneof=inox pvr cinepolis" json:"multiplexChain"`
	Address        string `validate:"omitempty,max=100" json:"address"`
	Locality       string `gorm:"not null" validate:"required,min=2,max=40" json:"locality"`
	City           string `gorm:"not null;index" validate:"required" json:"city"`
	State          string `gorm:"not null" validate:"required" json:"state"`
	Pincode        int    `gorm:"not null" validate:"required" json:"pincode"`

	// facility flags, flattened into columns
	TicketCancellation bool `gorm:"not null;default:false" json:"ticketCancellation"`
	FoodAndBeverages   bool `gorm:"not null;default:false" json:"foodAndBeverages"`
	MTicket            bool `gorm:"not null;default:false" json:"mTicket"`
	WheelChair         bool `gorm:"not null;default:false" json:"wheelChair"`
	Parking            bool `gorm:"not null;default:false" json:"parking"`
	FoodCourt          bool `gorm:"not null;default:false" json:"foodCourt"`
}

type CreateTheatreInput struct {
	Name           string `json:"name" validate:"required,min=4,max=40"`
	MultiplexChain string `json:"multiplexChain" validate:"required,oneof=inox pvr cinepolis"`
	Address        string `json:"address" validate:"omitempty,max=100"`
	Locality       string `json:"locality" validate:"required,min=2,max=40"`
	City           string `json:"city" validate:"required"`
	State          string `json:"state" validate:"required"`
	Pincode        int    `json:"pincode" validate:"required"`

	TicketCancellation bool `json:"ticketCancellation"`
	FoodAndBeverages   bool `json:"foodAndBeverages"`
	MTicket            bool `json:"mTicket"`
	WheelChair         bool `json:"wheelChair"`
	Parking            bool `json:"parking"`
	FoodCourt          bool `json:"foodCourt"`
}

type EditTheatreInput struct {
	Address  *string `json:"address" validate:"omitempty,max=100"`
	Locality *string `json:"locality" validate:"omitempty,min=2,max=40"`
	City     *string `json:"city"`
	State    *string `json:"state"`
	Pincode  *int    `json:"pincode"`

	TicketCancellation *bool `json:"ticketCancellation"`
	FoodAndBeverages   *bool `json:"foodAndBeverages"`
	MTicket            *bool `json:"mTicket"`
	WheelChair         *bool `json:"wheelChair"`
	Parking            *bool `json:"parking"`
	FoodCourt          *bool `json:"foodCourt"`
}
