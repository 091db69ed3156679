package handler

import (
	"errors"

	"movie_ticket_booking/constants"
	"movie_ticket_booking/database"
	"movie_ticket_booking/middleware"
	"movie_ticket_booking/model"
	"movie_ticket_booking/utils"
	"movie_ticket_booking/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetBookings lists the caller's bookings; admins see everything. Totals are
// derived per read, they are never a column.
func GetBookings(c *fiber.Ctx) error {
	principal := middleware.PrincipalFromCtx(c)
	if principal == nil {
		return utils.NewError(constants.MISSING_TOKEN, fiber.StatusUnauthorized)
	}

	q := database.DB.Preload("Seats").Preload("Movie").Preload("Theatre")
	if principal.Role != constants.RoleAdmin {
		q = q.Where("user_id = ?", principal.UserId)
	}

	var bookings []model.Booking
	if err := q.Order("created_at DESC").Find(&bookings).Error; err != nil {
		return err
	}

	for i := range bookings {
		bookings[i].Total = bookings[i].TotalPrice()
	}
	return utils.SuccessListResponse(c, fiber.StatusOK, len(bookings), bookings)
}

func CreateBooking(c *fiber.Ctx) error {
	principal := middleware.PrincipalFromCtx(c)
	if principal == nil {
		return utils.NewError(constants.MISSING_TOKEN, fiber.StatusUnauthorized)
	}

	input, err := validate.InputFromCtx[model.CreateBookingInput](c, validate.LocalCreateBooking)
	if err != nil {
		return err
	}

	db := database.DB

	var movie model.Movie
	if err := db.First(&movie, input.Movie).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.BadRequest(constants.MOVIE_NOT_FOUND)
		}
		return err
	}
	var theatre model.Theatre
	if err := db.First(&theatre, input.Theatre).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.BadRequest(constants.THEATRE_NOT_FOUND)
		}
		return err
	}

	booking := model.Booking{
		Code:        "BKG-" + uuid.New().String()[:8],
		UserId:      principal.UserId,
		MovieId:     movie.ID,
		TheatreId:   theatre.ID,
		SeatType:    input.SeatType,
		TicketPrice: input.TicketPrice,
		ShowDate:    input.ShowDate,
		ShowTime:    input.ShowTime,
	}
	for _, seat := range input.Seats {
		booking.Seats = append(booking.Seats, model.BookingSeat{Row: seat.Row, Col: seat.Col})
	}

	if err := db.Create(&booking).Error; err != nil {
		return err
	}

	booking.Total = booking.TotalPrice()
	return utils.SuccessResponse(c, fiber.StatusCreated, booking)
}

// GetBookingQR renders the booking code as a PNG mobile ticket. Users can
// only fetch their own booking.
func GetBookingQR(c *fiber.Ctx) error {
	principal := middleware.PrincipalFromCtx(c)
	if principal == nil {
		return utils.NewError(constants.MISSING_TOKEN, fiber.StatusUnauthorized)
	}

	id, err := validate.IdFromCtx(c)
	if err != nil {
		return err
	}

	var booking model.Booking
	if err := database.DB.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(constants.BOOKING_NOT_FOUND)
		}
		return err
	}
	if booking.UserId != principal.UserId && principal.Role != constants.RoleAdmin {
		return utils.NewError(constants.FORBIDDEN, fiber.StatusForbidden)
	}

	png, err := utils.GenerateQRCode(booking.Code, 256)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
