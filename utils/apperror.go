package utils

import (
	"errors"
	"log"

	"movie_ticket_booking/config"
	"movie_ticket_booking/constants"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// undefined_column, the list endpoints let unknown filter keys through to SQL
const pgUndefinedColumn = "42703"

// AppError is an operational error safe to surface to the client.
type AppError struct {
	Message    string
	StatusCode int
}

func (e *AppError) Error() string {
	return e.Message
}

// Status maps the code onto the response envelope status field:
// 4xx is "fail", everything else "error".
func (e *AppError) Status() string {
	if e.StatusCode >= 400 && e.StatusCode < 500 {
		return "fail"
	}
	return "error"
}

func NewError(message string, statusCode int) *AppError {
	return &AppError{Message: message, StatusCode: statusCode}
}

func BadRequest(message string) *AppError {
	return NewError(message, fiber.StatusBadRequest)
}

func NotFound(message string) *AppError {
	return NewError(message, fiber.StatusNotFound)
}

// GlobalErrorHandler is the fiber error handler every route funnels into.
// It translates persistence errors into client safe messages and hides
// unknown errors behind a generic 500 outside development.
func GlobalErrorHandler(c *fiber.Ctx, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return c.Status(appErr.StatusCode).JSON(fiber.Map{
			"status":  appErr.Status(),
			"message": appErr.Message,
		})
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":  "fail",
			"message": constants.NOT_FOUND,
		})
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"status":  "fail",
			"message": constants.DUPLICATE_VALUE,
		})
	}

	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"status":  "fail",
			"message": constants.RECORD_IN_USE,
		})
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUndefinedColumn {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "fail",
			"message": constants.ERROR_QUERY,
		})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"status":  "fail",
			"message": fiberErr.Message,
		})
	}

	log.Printf("unhandled error: %v", err)

	if config.IsDevelopment() {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": constants.INTERNAL_ERROR,
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"status":  "error",
		"message": constants.INTERNAL_ERROR,
	})
}
