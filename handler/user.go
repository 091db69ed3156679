package handler

import (
	"errors"

	"movie_ticket_booking/constants"
	"movie_ticket_booking/database"
	"movie_ticket_booking/model"
	"movie_ticket_booking/utils"
	"movie_ticket_booking/validate"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetUsers(c *fiber.Ctx) error {
	query, err := utils.NewApiFeatures(database.DB.Model(&model.User{}), c.Queries()).
		Filter().
		Sort().
		Projection().
		Pagination().
		Query()
	if err != nil {
		return err
	}

	var users []model.User
	if err := query.Find(&users).Error; err != nil {
		return err
	}
	return utils.SuccessListResponse(c, fiber.StatusOK, len(users), users)
}

func GetUser(c *fiber.Ctx) error {
	id, err := validate.IdFromCtx(c)
	if err != nil {
		return err
	}

	var user model.User
	if err := database.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(constants.USER_NOT_FOUND)
		}
		return err
	}
	return utils.SuccessResponse(c, fiber.StatusOK, user)
}

func DeleteUser(c *fiber.Ctx) error {
	id, err := validate.IdFromCtx(c)
	if err != nil {
		return err
	}

	res := database.DB.Delete(&model.User{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.NotFound(constants.USER_NOT_FOUND)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
