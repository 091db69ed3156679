package handler

import (
	"errors"
	"fmt"

	"movie_ticket_booking/constants"
	"movie_ticket_booking/database"
	"movie_ticket_booking/helper"
	"movie_ticket_booking/model"
	"movie_ticket_booking/utils"
	"movie_ticket_booking/validate"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetReleases(c *fiber.Ctx) error {
	query, err := utils.NewApiFeatures(database.DB.Model(&model.Release{}), c.Queries()).
		Filter().
		Sort().
		Projection().
		Pagination().
		Query()
	if err != nil {
		return err
	}

	var releases []model.Release
	if err := query.Preload("Movie").Preload("Theatre").Preload("Showtimes").Find(&releases).Error; err != nil {
		return err
	}
	return utils.SuccessListResponse(c, fiber.StatusOK, len(releases), releases)
}

// GetRecommendedReleases lists releases deduplicated by movie slug, one card
// per movie for the landing page.
func GetRecommendedReleases(c *fiber.Ctx) error {
	var releases []model.Release
	err := database.DB.Preload("Movie").Order("id ASC").Find(&releases).Error
	if err != nil {
		return err
	}

	seen := map[string]bool{}
	unique := make([]model.Release, 0, len(releases))
	for _, r := range releases {
		if seen[r.Slug] {
			continue
		}
		seen[r.Slug] = true
		unique = append(unique, r)
	}

	return utils.SuccessListResponse(c, fiber.StatusOK, len(unique), unique)
}

// GetRelatedReleases lists one release per movie sharing a genre with the
// anchor movie, capped at 11 movies so the rail stays short.
func GetRelatedReleases(c *fiber.Ctx) error {
	movieSlug := c.Params("movieSlug")

	db := database.DB
	var movie model.Movie
	if err := db.Where("slug = ?", movieSlug).First(&movie).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound("No movie found with this slug")
		}
		return err
	}

	q := db.Model(&model.Movie{})
	for i, genre := range utils.SplitList(movie.Genres) {
		pattern := "%" + genre + "%"
		if i == 0 {
			q = q.Where("genres LIKE ?", pattern)
		} else {
			q = q.Or("genres LIKE ?", pattern)
		}
	}

	var movies []model.Movie
	if err := q.Limit(11).Find(&movies).Error; err != nil {
		return err
	}

	related := make([]model.RelatedRelease, 0, len(movies))
	for _, m := range movies {
		var release model.Release
		err := db.Where("movie_id = ?", m.ID).First(&release).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// movie not released anywhere yet, skip it
			continue
		}
		if err != nil {
			return err
		}
		related = append(related, model.RelatedRelease{
			Id:   release.ID,
			Slug: release.Slug,
			Movie: model.RelatedMovieCard{
				Image:          m.Image,
				Title:          m.Title,
				RatingsAverage: m.RatingsAverage,
				Slug:           m.Slug,
			},
		})
	}

	return utils.SuccessListResponse(c, fiber.StatusOK, len(related), related)
}

func CreateRelease(c *fiber.Ctx) error {
	input, err := validate.InputFromCtx[model.CreateReleaseInput](c, validate.LocalCreateRelease)
	if err != nil {
		return err
	}

	db := database.DB

	var movie model.Movie
	if err := db.First(&movie, input.Movie).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.BadRequest("Movie not released")
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

	release := model.Release{
		MovieId:        movie.ID,
		TheatreId:      theatre.ID,
		Screen:         input.Screen,
		Language:       input.Language,
		Slug:           movie.Slug,
		ReleaseDate:    input.ReleaseDate,
		PriceNormal:    input.Price.Normal,
		PriceExecutive: input.Price.Executive,
		PriceVip:       input.Price.Vip,
	}
	for _, t := range input.Showtimes {
		release.Showtimes = append(release.Showtimes, model.ReleaseShowtime{
			TheatreId: theatre.ID,
			ShowTime:  t,
		})
	}

	if err := db.Create(&release).Error; err != nil {
		return err
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, release)
}

// GetReleaseBySlug returns the movie card for a slug together with the
// screens available per language across all its releases.
func GetReleaseBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var releases []model.Release
	err := database.DB.Preload("Movie").Where("slug = ?", slug).Find(&releases).Error
	if err != nil {
		return err
	}
	if len(releases) == 0 {
		return utils.NotFound(constants.RELEASE_NOT_FOUND)
	}

	languageAndScreen := map[string][]string{}
	for _, r := range releases {
		languageAndScreen[r.Language] = append(languageAndScreen[r.Language], r.Screen)
	}

	first := releases[0]
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"id":                first.ID,
		"movie":             movieResponse(first.Movie),
		"releaseDate":       first.ReleaseDate,
		"languageAndScreen": languageAndScreen,
		"slug":              first.Slug,
	})
}

func EditRelease(c *fiber.Ctx) error {
	id, err := validate.IdFromCtx(c)
	if err != nil {
		return err
	}
	input, err := validate.InputFromCtx[model.EditReleaseInput](c, validate.LocalEditRelease)
	if err != nil {
		return err
	}

	if input.Screen == nil && input.Language == nil && input.Price == nil &&
		input.ReleaseDate == nil && input.Showtimes == nil {
		return utils.BadRequest("Please provide screen, language, price, releaseDate or movieDateAndTime")
	}

	db := database.DB
	var release model.Release
	if err := db.First(&release, id).Error; err != nil {
		return err
	}

	if input.Screen != nil {
		release.Screen = *input.Screen
	}
	if input.Language != nil {
		release.Language = *input.Language
	}
	if input.Price != nil {
		release.PriceNormal = input.Price.Normal
		release.PriceExecutive = input.Price.Executive
		release.PriceVip = input.Price.Vip
	}
	if input.ReleaseDate != nil {
		release.ReleaseDate = *input.ReleaseDate
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if input.Showtimes != nil {
			if err := tx.Where("release_id = ?", release.ID).Delete(&model.ReleaseShowtime{}).Error; err != nil {
				return err
			}
			for _, t := range *input.Showtimes {
				showtime := model.ReleaseShowtime{
					ReleaseId: release.ID,
					TheatreId: release.TheatreId,
					ShowTime:  t,
				}
				if err := tx.Create(&showtime).Error; err != nil {
					return err
				}
			}
		}
		return tx.Save(&release).Error
	})
	if err != nil {
		return err
	}

	if err := db.Preload("Showtimes").First(&release, release.ID).Error; err != nil {
		return err
	}
	return utils.SuccessResponse(c, fiber.StatusOK, release)
}

func DeleteRelease(c *fiber.Ctx) error {
	id, err := validate.IdFromCtx(c)
	if err != nil {
		return err
	}

	db := database.DB
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("release_id = ?", id).Delete(&model.ReleaseShowtime{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Release{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return utils.NotFound(constants.RELEASE_NOT_FOUND)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetReleaseTheatres answers "which theatres show this movie on this day".
// An unknown screen value is rejected before the query; an empty result is a
// 404, the UI treats "nothing bookable" as an error state rather than an
// empty list.
func GetReleaseTheatres(c *fiber.Ctx) error {
	movieSlug := c.Params("movieSlug")

	date := c.Query("date")
	if date == "" {
		return utils.BadRequest("Please provide date")
	}
	day, err := helper.ParseCalendarDay(date)
	if err != nil {
		return err
	}

	screen := c.Query("screen")
	if screen != "" && !model.ValidScreen(screen) {
		return utils.BadRequest(fmt.Sprintf("unknown screen %q", screen))
	}

	theatres, err := helper.TheatreAvailabilityFor(database.DB, helper.AvailabilityFilter{
		MovieSlug: movieSlug,
		Day:       day,
		Screen:    screen,
		Language:  c.Query("language"),
	})
	if err != nil {
		return err
	}

	if len(theatres) == 0 {
		return utils.NotFound(constants.NO_AVAILABILITY)
	}
	return utils.SuccessListResponse(c, fiber.StatusOK, len(theatres), theatres)
}
