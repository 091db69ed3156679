package validate

import (
	"strconv"

	"movie_ticket_booking/constants"
	"movie_ticket_booking/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// parseBody parses the JSON body into T, runs the struct rules and stores
// the result under localKey for the handler.
func parseBody[T any](localKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := new(T)
		if err := c.BodyParser(input); err != nil {
			return utils.BadRequest(constants.ERROR_INPUT)
		}
		if err := validate.Struct(input); err != nil {
			return utils.BadRequest(err.Error())
		}
		c.Locals(localKey, *input)
		return c.Next()
	}
}

// GetById parses a numeric id path parameter into Locals("inputId").
func GetById(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		value, err := strconv.Atoi(c.Params(key))
		if err != nil || value <= 0 {
			return utils.BadRequest(constants.ERROR_INPUT)
		}
		c.Locals("inputId", uint(value))
		return c.Next()
	}
}

func InputFromCtx[T any](c *fiber.Ctx, localKey string) (T, error) {
	input, ok := c.Locals(localKey).(T)
	if !ok {
		var zero T
		return zero, utils.NewError(constants.ERROR_PARSE_DATA, fiber.StatusInternalServerError)
	}
	return input, nil
}

func IdFromCtx(c *fiber.Ctx) (uint, error) {
	id, ok := c.Locals("inputId").(uint)
	if !ok {
		return 0, utils.NewError(constants.ERROR_PARSE_DATA, fiber.StatusInternalServerError)
	}
	return id, nil
}
