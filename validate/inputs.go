package validate

import (
	"movie_ticket_booking/model"

	"github.com/gofiber/fiber/v2"
)

const (
	LocalCreateMovie   = "inputCreateMovie"
	LocalEditMovie     = "inputEditMovie"
	LocalCreateTheatre = "inputCreateTheatre"
	LocalEditTheatre   = "inputEditTheatre"
	LocalCreateRelease = "inputCreateRelease"
	LocalEditRelease   = "inputEditRelease"
	LocalCreateBooking = "inputCreateBooking"
	LocalCreateReview  = "inputCreateReview"
	LocalEditReview    = "inputEditReview"
	LocalCreateCity    = "inputCreateCity"
	LocalEditCity      = "inputEditCity"
	LocalSignup        = "inputSignup"
	LocalLogin         = "inputLogin"
)

func CreateMovie() fiber.Handler   { return parseBody[model.CreateMovieInput](LocalCreateMovie) }
func EditMovie() fiber.Handler     { return parseBody[model.EditMovieInput](LocalEditMovie) }
func CreateTheatre() fiber.Handler { return parseBody[model.CreateTheatreInput](LocalCreateTheatre) }
func EditTheatre() fiber.Handler   { return parseBody[model.EditTheatreInput](LocalEditTheatre) }
func CreateRelease() fiber.Handler { return parseBody[model.CreateReleaseInput](LocalCreateRelease) }
func EditRelease() fiber.Handler   { return parseBody[model.EditReleaseInput](LocalEditRelease) }
func CreateBooking() fiber.Handler { return parseBody[model.CreateBookingInput](LocalCreateBooking) }
func CreateReview() fiber.Handler  { return parseBody[model.CreateReviewInput](LocalCreateReview) }
func EditReview() fiber.Handler    { return parseBody[model.EditReviewInput](LocalEditReview) }
func CreateCity() fiber.Handler    { return parseBody[model.CreateCityInput](LocalCreateCity) }
func EditCity() fiber.Handler      { return parseBody[model.EditCityInput](LocalEditCity) }
func Signup() fiber.Handler        { return parseBody[model.SignupInput](LocalSignup) }
func Login() fiber.Handler         { return parseBody[model.LoginInput](LocalLogin) }
