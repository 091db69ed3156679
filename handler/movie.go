package handler

import (
	"movie_ticket_booking/constants"
	"movie_ticket_booking/database"
	"movie_ticket_booking/helper"
	"movie_ticket_booking/model"
	"movie_ticket_booking/utils"
	"movie_ticket_booking/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func movieResponse(m model.Movie) model.MovieResponse {
	return model.MovieResponse{
		Movie:        m,
		LanguageList: utils.SplitList(m.Languages),
		GenreList:    utils.SplitList(m.Genres),
		Cast: model.CastInfo{
			Actors:    utils.SplitList(m.CastActors),
			Actresses: utils.SplitList(m.CastActresses),
		},
		CrewList: utils.SplitList(m.Crew),
	}
}

func GetMovies(c *fiber.Ctx) error {
	query, err := utils.NewApiFeatures(database.DB.Model(&model.Movie{}), c.Queries()).
		Filter().
		Sort().
		Projection().
		Pagination().
		Query()
	if err != nil {
		return err
	}

	var movies []model.Movie
	if err := query.Find(&movies).Error; err != nil {
		return err
	}

	responses := make([]model.MovieResponse, 0, len(movies))
	for _, m := range movies {
		responses = append(responses, movieResponse(m))
	}
	return utils.SuccessListResponse(c, fiber.StatusOK, len(responses), responses)
}

func GetMovieBySlug(c *fiber.Ctx) error {
	var movie model.Movie
	if err := database.DB.Where("slug = ?", c.Params("slug")).First(&movie).Error; err != nil {
		return err
	}
	return utils.SuccessResponse(c, fiber.StatusOK, movieResponse(movie))
}

func CreateMovie(c *fiber.Ctx) error {
	input, err := validate.InputFromCtx[model.CreateMovieInput](c, validate.LocalCreateMovie)
	if err != nil {
		return err
	}

	db := database.DB
	movie := model.Movie{
		Title:         input.Title,
		Image:         input.Image,
		Poster:        input.Poster,
		Languages:     utils.JoinList(input.Languages),
		Genres:        utils.JoinList(input.Genres),
		CastActors:    utils.JoinList(input.CastActors),
		CastActresses: utils.JoinList(input.CastActresses),
		Crew:          utils.JoinList(input.Crew),
		Certification: input.Certification,
		Duration:      input.Duration,
		About:         input.About,
		ReleaseDate:   input.ReleaseDate,
		Slug:          helper.GenerateUniqueMovieSlug(db, input.Title),
	}

	if err := db.Create(&movie).Error; err != nil {
		return err
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, movieResponse(movie))
}

func EditMovie(c *fiber.Ctx) error {
	id, err := validate.IdFromCtx(c)
	if err != nil {
		return err
	}
	input, err := validate.InputFromCtx[model.EditMovieInput](c, validate.LocalEditMovie)
	if err != nil {
		return err
	}

	db := database.DB
	var movie model.Movie
	if err := db.First(&movie, id).Error; err != nil {
		return err
	}

	// title and slug are immutable, the input has no way to carry them
	copier.CopyWithOption(&movie, &input, copier.Option{IgnoreEmpty: true})
	if input.Languages != nil {
		movie.Languages = utils.JoinList(*input.Languages)
	}
	if input.Genres != nil {
		movie.Genres = utils.JoinList(*input.Genres)
	}
	if input.CastActors != nil {
		movie.CastActors = utils.JoinList(*input.CastActors)
	}
	if input.CastActresses != nil {
		movie.CastActresses = utils.JoinList(*input.CastActresses)
	}
	if input.Crew != nil {
		movie.Crew = utils.JoinList(*input.Crew)
	}

	if err := db.Save(&movie).Error; err != nil {
		return err
	}
	return utils.SuccessResponse(c, fiber.StatusOK, movieResponse(movie))
}

func DeleteMovie(c *fiber.Ctx) error {
	id, err := validate.IdFromCtx(c)
	if err != nil {
		return err
	}

	res := database.DB.Delete(&model.Movie{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.NotFound(constants.MOVIE_NOT_FOUND)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
