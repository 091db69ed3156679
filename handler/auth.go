package handler

import (
	"errors"
	"time"

	"movie_ticket_booking/constants"
	"movie_ticket_booking/database"
	"movie_ticket_booking/middleware"
	"movie_ticket_booking/model"
	"movie_ticket_booking/utils"
	"movie_ticket_booking/validate"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenTTL = 24 * time.Hour

func setAccessCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  time.Now().Add(tokenTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

func Signup(c *fiber.Ctx) error {
	input, err := validate.InputFromCtx[model.SignupInput](c, validate.LocalSignup)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), 10)
	if err != nil {
		return err
	}

	user := model.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hash),
		Role:     constants.RoleUser,
		Active:   true,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		return err
	}

	token, err := middleware.SignToken(&user, tokenTTL)
	if err != nil {
		return err
	}
	setAccessCookie(c, token)

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"user":  user,
		"token": model.TokenData{AccessToken: token},
	})
}

func Login(c *fiber.Ctx) error {
	input, err := validate.InputFromCtx[model.LoginInput](c, validate.LocalLogin)
	if err != nil {
		return err
	}

	var user model.User
	if err := database.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NewError(constants.WRONG_CREDENTIAL, fiber.StatusUnauthorized)
		}
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)) != nil {
		return utils.NewError(constants.WRONG_CREDENTIAL, fiber.StatusUnauthorized)
	}

	token, err := middleware.SignToken(&user, tokenTTL)
	if err != nil {
		return err
	}
	setAccessCookie(c, token)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"user":  user,
		"token": model.TokenData{AccessToken: token},
	})
}

func Me(c *fiber.Ctx) error {
	principal := middleware.PrincipalFromCtx(c)
	if principal == nil {
		return utils.NewError(constants.MISSING_TOKEN, fiber.StatusUnauthorized)
	}

	var user model.User
	if err := database.DB.First(&user, principal.UserId).Error; err != nil {
		return err
	}
	return utils.SuccessResponse(c, fiber.StatusOK, user)
}
