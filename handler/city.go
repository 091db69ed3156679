package handler

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"movie_ticket_booking/constants"
	"movie_ticket_booking/database"
	"movie_ticket_booking/model"
	"movie_ticket_booking/utils"
	"movie_ticket_booking/validate"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const (
	cityCacheKey = "cities:all"
	cityCacheTTL = 10 * time.Minute
)

// GetCities serves the city listing from redis when possible; the list
// changes rarely and fronts every session.
func GetCities(c *fiber.Ctx) error {
	ctx := context.Background()

	if database.Redis != nil {
		if cached, err := database.Redis.Get(ctx, cityCacheKey).Result(); err == nil {
			var cities []model.City
			if json.Unmarshal([]byte(cached), &cities) == nil {
				return utils.SuccessListResponse(c, fiber.StatusOK, len(cities), cities)
			}
		}
	}

	var cities []model.City
	if err := database.DB.Order("city ASC").Find(&cities).Error; err != nil {
		return err
	}

	if database.Redis != nil {
		if payload, err := json.Marshal(cities); err == nil {
			database.Redis.Set(ctx, cityCacheKey, payload, cityCacheTTL)
		}
	}
	return utils.SuccessListResponse(c, fiber.StatusOK, len(cities), cities)
}

func CreateCity(c *fiber.Ctx) error {
	input, err := validate.InputFromCtx[model.CreateCityInput](c, validate.LocalCreateCity)
	if err != nil {
		return err
	}

	city := model.City{City: input.City, Image: input.Image}
	if err := database.DB.Create(&city).Error; err != nil {
		return err
	}

	if database.Redis != nil {
		database.Redis.Del(context.Background(), cityCacheKey)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, city)
}

func GetCity(c *fiber.Ctx) error {
	id, err := validate.IdFromCtx(c)
	if err != nil {
		return err
	}

	var city model.City
	if err := database.DB.First(&city, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(constants.CITY_NOT_FOUND)
		}
		return err
	}
	return utils.SuccessResponse(c, fiber.StatusOK, city)
}

func EditCity(c *fiber.Ctx) error {
	id, err := validate.IdFromCtx(c)
	if err != nil {
		return err
	}
	input, err := validate.InputFromCtx[model.EditCityInput](c, validate.LocalEditCity)
	if err != nil {
		return err
	}

	db := database.DB
	var city model.City
	if err := db.First(&city, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(constants.CITY_NOT_FOUND)
		}
		return err
	}

	city.City = input.City
	if input.Image != "" {
		city.Image = input.Image
	}
	if err := db.Save(&city).Error; err != nil {
		return err
	}

	if database.Redis != nil {
		database.Redis.Del(context.Background(), cityCacheKey)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, city)
}

func DeleteCity(c *fiber.Ctx) error {
	id, err := validate.IdFromCtx(c)
	if err != nil {
		return err
	}

	res := database.DB.Delete(&model.City{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.NotFound(constants.CITY_NOT_FOUND)
	}

	if database.Redis != nil {
		database.Redis.Del(context.Background(), cityCacheKey)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
