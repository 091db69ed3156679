package handler

import (
	"movie_ticket_booking/constants"
	"movie_ticket_booking/database"
	"movie_ticket_booking/model"
	"movie_ticket_booking/utils"
	"movie_ticket_booking/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetTheatres(c *fiber.Ctx) error {
	query, err := utils.NewApiFeatures(database.DB.Model(&model.Theatre{}), c.Queries()).
		Filter().
		Sort().
		Projection().
		Pagination().
		Query()
	if err != nil {
		return err
	}

	var theatres []model.Theatre
	if err := query.Find(&theatres).Error; err != nil {
		return err
	}
	return utils.SuccessListResponse(c, fiber.StatusOK, len(theatres), theatres)
}

func GetTheatreById(c *fiber.Ctx) error {
	id, err := validate.IdFromCtx(c)
	if err != nil {
		return err
	}

	var theatre model.Theatre
	if err := database.DB.First(&theatre, id).Error; err != nil {
		return err
	}
	return utils.SuccessResponse(c, fiber.StatusOK, theatre)
}

func CreateTheatre(c *fiber.Ctx) error {
	input, err := validate.InputFromCtx[model.CreateTheatreInput](c, validate.LocalCreateTheatre)
	if err != nil {
		return err
	}

	var theatre model.Theatre
	copier.Copy(&theatre, &input)

	if err := database.DB.Create(&theatre).Error; err != nil {
		return err
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, theatre)
}

func EditTheatre(c *fiber.Ctx) error {
	id, err := validate.IdFromCtx(c)
	if err != nil {
		return err
	}
	input, err := validate.InputFromCtx[model.EditTheatreInput](c, validate.LocalEditTheatre)
	if err != nil {
		return err
	}

	db := database.DB
	var theatre model.Theatre
	if err := db.First(&theatre, id).Error; err != nil {
		return err
	}

	copier.CopyWithOption(&theatre, &input, copier.Option{IgnoreEmpty: true})

	if err := db.Save(&theatre).Error; err != nil {
		return err
	}
	return utils.SuccessResponse(c, fiber.StatusOK, theatre)
}

func DeleteTheatre(c *fiber.Ctx) error {
	id, err := validate.IdFromCtx(c)
	if err != nil {
		return err
	}

	res := database.DB.Delete(&model.Theatre{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.NotFound(constants.THEATRE_NOT_FOUND)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
