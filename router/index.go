package router

import (
	"movie_ticket_booking/constants"
	"movie_ticket_booking/handler"
	"movie_ticket_booking/middleware"
	"movie_ticket_booking/validate"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes declares every route group, compiles the table and mounts it.
// Compilation fails on any incomplete declaration, so a bad wiring kills the
// process at boot instead of silently dropping an endpoint.
func SetupRoutes(app *fiber.App) error {
	auth := NewGroup("/api/v1/auth")
	auth.Post("/signup", handler.Signup).
		Body("name", "email", "password").
		Use(validate.Signup())
	auth.Post("/login", handler.Login).
		Body("email", "password").
		Use(validate.Login())
	auth.Get("/me", handler.Me).
		Use(middleware.Protected())

	movies := NewGroup("/api/v1/movies")
	movies.Get("/", handler.GetMovies)
	movies.Get("/:slug", handler.GetMovieBySlug).
		Params("slug")
	movies.Post("/", handler.CreateMovie).
		Body("title", "languages", "genres", "duration", "certification", "about", "releaseDate").
		Use(middleware.Protected(), middleware.AccessAllowedTo(constants.RoleAdmin), validate.CreateMovie())
	movies.Patch("/:id", handler.EditMovie).
		Params("id").
		Use(middleware.Protected(), middleware.AccessAllowedTo(constants.RoleAdmin), validate.GetById("id"), validate.EditMovie())
	movies.Delete("/:id", handler.DeleteMovie).
		Params("id").
		Use(middleware.Protected(), middleware.AccessAllowedTo(constants.RoleAdmin), validate.GetById("id"))

	theatres := NewGroup("/api/v1/theatres")
	theatres.Get("/", handler.GetTheatres)
	theatres.Get("/:id", handler.GetTheatreById).
		Params("id").
		Use(validate.GetById("id"))
	theatres.Post("/", handler.CreateTheatre).
		Body("name", "multiplexChain", "locality", "city", "state", "pincode").
		Use(middleware.Protected(), middleware.AccessAllowedTo(constants.RoleAdmin), validate.CreateTheatre())
	theatres.Patch("/:id", handler.EditTheatre).
		Params("id").
		Use(middleware.Protected(), middleware.AccessAllowedTo(constants.RoleAdmin), validate.GetById("id"), validate.EditTheatre())
	theatres.Delete("/:id", handler.DeleteTheatre).
		Params("id").
		Use(middleware.Protected(), middleware.AccessAllowedTo(constants.RoleAdmin), validate.GetById("id"))

	releases := NewGroup("/api/v1/releases")
	releases.Get("/", handler.GetReleases)
	releases.Get("/recommended", handler.GetRecommendedReleases)
	releases.Get("/theatres/:movieSlug", handler.GetReleaseTheatres).
		Params("movieSlug")
	releases.Get("/:movieSlug/related-releases", handler.GetRelatedReleases).
		Params("movieSlug")
	releases.Get("/:slug", handler.GetReleaseBySlug).
		Params("slug")
	releases.Post("/", handler.CreateRelease).
		Body("movie", "theatre", "screen", "language", "price", "movieDateAndTime").
		Use(middleware.Protected(), middleware.AccessAllowedTo(constants.RoleAdmin), validate.CreateRelease())
	releases.Patch("/:id", handler.EditRelease).
		Params("id").
		Use(middleware.Protected(), middleware.AccessAllowedTo(constants.RoleAdmin), validate.GetById("id"), validate.EditRelease())
	releases.Delete("/:id", handler.DeleteRelease).
		Params("id").
		Use(middleware.Protected(), middleware.AccessAllowedTo(constants.RoleAdmin), validate.GetById("id"))

	bookings := NewGroup("/api/v1/bookings")
	bookings.Get("/", handler.GetBookings).
		Use(middleware.Protected())
	bookings.Post("/", handler.CreateBooking).
		Body("movie", "theatre", "seatType", "seats", "ticketPrice", "showDate", "showTime").
		Use(middleware.Protected(), middleware.AccessAllowedTo(constants.RoleUser), validate.CreateBooking())
	bookings.Get("/:id/qr", handler.GetBookingQR).
		Params("id").
		Use(middleware.Protected(), validate.GetById("id"))

	reviews := NewGroup("/api/v1/reviews")
	reviews.Get("/", handler.GetReviews)
	reviews.Post("/:id", handler.CreateReview).
		Params("id").
		Body("review", "rating").
		Use(middleware.Protected(), middleware.AccessAllowedTo(constants.RoleUser), validate.CreateReview())
	reviews.Get("/:id", handler.GetReview).
		Params("id").
		Use(middleware.Protected(), middleware.AccessAllowedTo(constants.RoleUser), validate.GetById("id"))
	reviews.Patch("/:id", handler.EditReview).
		Params("id").
		Use(middleware.Protected(), middleware.AccessAllowedTo(constants.RoleUser), validate.GetById("id"), validate.EditReview())
	reviews.Delete("/:id", handler.DeleteReview).
		Params("id").
		Use(middleware.Protected(), middleware.AccessAllowedTo(constants.RoleUser), validate.GetById("id"))

	cities := NewGroup("/api/v1/cities")
	cities.Get("/", handler.GetCities)
	cities.Get("/:id", handler.GetCity).
		Params("id").
		Use(validate.GetById("id"))
	cities.Post("/", handler.CreateCity).
		Body("city").
		Use(middleware.Protected(), middleware.AccessAllowedTo(constants.RoleAdmin), validate.CreateCity())
	cities.Patch("/:id", handler.EditCity).
		Params("id").
		Body("city").
		Use(middleware.Protected(), middleware.AccessAllowedTo(constants.RoleAdmin), validate.GetById("id"), validate.EditCity())
	cities.Delete("/:id", handler.DeleteCity).
		Params("id").
		Use(middleware.Protected(), middleware.AccessAllowedTo(constants.RoleAdmin), validate.GetById("id"))

	users := NewGroup("/api/v1/users")
	users.Get("/", handler.GetUsers).
		Use(middleware.Protected(), middleware.AccessAllowedTo(constants.RoleAdmin))
	users.Get("/:id", handler.GetUser).
		Params("id").
		Use(middleware.Protected(), middleware.AccessAllowedTo(constants.RoleAdmin), validate.GetById("id"))
	users.Delete("/:id", handler.DeleteUser).
		Params("id").
		Use(middleware.Protected(), middleware.AccessAllowedTo(constants.RoleAdmin), validate.GetById("id"))

	table, err := Compile(auth, movies, theatres, releases, bookings, reviews, cities, users)
	if err != nil {
		return err
	}
	table.Mount(app)
	return nil
}
