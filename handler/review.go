package handler

import (
	"errors"
	"strconv"

	"movie_ticket_booking/constants"
	"movie_ticket_booking/database"
	"movie_ticket_booking/helper"
	"movie_ticket_booking/middleware"
	"movie_ticket_booking/model"
	"movie_ticket_booking/utils"
	"movie_ticket_booking/validate"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetReviews(c *fiber.Ctx) error {
	query, err := utils.NewApiFeatures(database.DB.Model(&model.Review{}), c.Queries()).
		Filter().
		Sort().
		Projection().
		Pagination().
		Query()
	if err != nil {
		return err
	}

	var reviews []model.Review
	if err := query.Preload("Movie").Preload("User").Find(&reviews).Error; err != nil {
		return err
	}
	return utils.SuccessListResponse(c, fiber.StatusOK, len(reviews), reviews)
}

// CreateReview creates the caller's review for the movie in the path. The
// rating aggregate refresh runs after the response, its failure never fails
// the write.
func CreateReview(c *fiber.Ctx) error {
	principal := middleware.PrincipalFromCtx(c)
	if principal == nil {
		return utils.NewError(constants.MISSING_TOKEN, fiber.StatusUnauthorized)
	}

	movieId, err := strconv.Atoi(c.Params("id"))
	if err != nil || movieId <= 0 {
		return utils.BadRequest("Please provide movie id")
	}

	input, err := validate.InputFromCtx[model.CreateReviewInput](c, validate.LocalCreateReview)
	if err != nil {
		return err
	}

	db := database.DB
	var movie model.Movie
	if err := db.First(&movie, movieId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(constants.MOVIE_NOT_FOUND)
		}
		return err
	}

	review := model.Review{
		Review:  input.Review,
		Rating:  input.Rating,
		MovieId: movie.ID,
		UserId:  principal.UserId,
	}
	if err := db.Create(&review).Error; err != nil {
		return err
	}

	helper.RecomputeMovieRatingsAsync(movie.ID)
	return utils.SuccessResponse(c, fiber.StatusCreated, review)
}

func GetReview(c *fiber.Ctx) error {
	id, err := validate.IdFromCtx(c)
	if err != nil {
		return err
	}

	var review model.Review
	if err := database.DB.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(constants.REVIEW_NOT_FOUND)
		}
		return err
	}
	return utils.SuccessResponse(c, fiber.StatusOK, review)
}

func EditReview(c *fiber.Ctx) error {
	principal := middleware.PrincipalFromCtx(c)
	if principal == nil {
		return utils.NewError(constants.MISSING_TOKEN, fiber.StatusUnauthorized)
	}

	id, err := validate.IdFromCtx(c)
	if err != nil {
		return err
	}
	input, err := validate.InputFromCtx[model.EditReviewInput](c, validate.LocalEditReview)
	if err != nil {
		return err
	}

	if input.Review == nil && input.Rating == nil {
		return utils.BadRequest("Please provide review or rating")
	}

	db := database.DB
	var review model.Review
	if err := db.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(constants.REVIEW_NOT_FOUND)
		}
		return err
	}
	if review.UserId != principal.UserId {
		return utils.NewError("You are not allowed to update or delete other user's review", fiber.StatusUnauthorized)
	}

	if input.Review != nil {
		review.Review = *input.Review
	}
	if input.Rating != nil {
		review.Rating = *input.Rating
	}
	if err := db.Save(&review).Error; err != nil {
		return err
	}

	helper.RecomputeMovieRatingsAsync(review.MovieId)
	return utils.SuccessResponse(c, fiber.StatusOK, review)
}

func DeleteReview(c *fiber.Ctx) error {
	principal := middleware.PrincipalFromCtx(c)
	if principal == nil {
		return utils.NewError(constants.MISSING_TOKEN, fiber.StatusUnauthorized)
	}

	id, err := validate.IdFromCtx(c)
	if err != nil {
		return err
	}

	db := database.DB
	var review model.Review
	if err := db.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(constants.REVIEW_NOT_FOUND)
		}
		return err
	}
	if review.UserId != principal.UserId {
		return utils.NewError("You are not allowed to update or delete other user's review", fiber.StatusUnauthorized)
	}

	if err := db.Delete(&review).Error; err != nil {
		return err
	}

	helper.RecomputeMovieRatingsAsync(review.MovieId)
	return c.SendStatus(fiber.StatusNoContent)
}
