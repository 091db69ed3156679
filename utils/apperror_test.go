package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"movie_ticket_booking/constants"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func errorApp(err error) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: GlobalErrorHandler})
	app.Get("/boom", func(c *fiber.Ctx) error { return err })
	return app
}

func requestBoom(t *testing.T, app *fiber.App) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/boom", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	var envelope map[string]any
	if err := json.Unmarshal(body, &envelope); err != nil {
		t.Fatalf("bad response body %q: %v", body, err)
	}
	return resp.StatusCode, envelope
}

func TestAppErrorStatus(t *testing.T) {
	if got := BadRequest("x").Status(); got != "fail" {
		t.Errorf("expected fail for 400, got %q", got)
	}
	if got := NewError("x", fiber.StatusInternalServerError).Status(); got != "error" {
		t.Errorf("expected error for 500, got %q", got)
	}
}

func TestHandlerTranslatesAppError(t *testing.T) {
	code, envelope := requestBoom(t, errorApp(NotFound("nothing here")))
	if code != fiber.StatusNotFound {
		t.Errorf("expected 404, got %d", code)
	}
	if envelope["status"] != "fail" || envelope["message"] != "nothing here" {
		t.Errorf("unexpected envelope %v", envelope)
	}
}

func TestHandlerTranslatesRecordNotFound(t *testing.T) {
	code, envelope := requestBoom(t, errorApp(gorm.ErrRecordNotFound))
	if code != fiber.StatusNotFound {
		t.Errorf("expected 404, got %d", code)
	}
	if envelope["message"] != constants.NOT_FOUND {
		t.Errorf("unexpected message %v", envelope["message"])
	}
}

func TestHandlerTranslatesDuplicatedKey(t *testing.T) {
	code, envelope := requestBoom(t, errorApp(gorm.ErrDuplicatedKey))
	if code != fiber.StatusConflict {
		t.Errorf("expected 409, got %d", code)
	}
	if envelope["message"] != constants.DUPLICATE_VALUE {
		t.Errorf("unexpected message %v", envelope["message"])
	}
}

func TestHandlerTranslatesForeignKeyViolation(t *testing.T) {
	code, envelope := requestBoom(t, errorApp(gorm.ErrForeignKeyViolated))
	if code != fiber.StatusConflict {
		t.Errorf("expected 409, got %d", code)
	}
	if envelope["message"] != constants.RECORD_IN_USE {
		t.Errorf("unexpected message %v", envelope["message"])
	}
}

func TestHandlerTranslatesUndefinedColumn(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "42703", Message: `column "foo" does not exist`}
	code, envelope := requestBoom(t, errorApp(pgErr))
	if code != fiber.StatusBadRequest {
		t.Errorf("expected 400, got %d", code)
	}
	if envelope["message"] != constants.ERROR_QUERY {
		t.Errorf("unexpected message %v", envelope["message"])
	}
}

func TestHandlerHidesUnknownErrors(t *testing.T) {
	code, envelope := requestBoom(t, errorApp(errors.New("pq: connection reset")))
	if code != fiber.StatusInternalServerError {
		t.Errorf("expected 500, got %d", code)
	}
	if envelope["message"] != constants.INTERNAL_ERROR {
		t.Errorf("unexpected message %v", envelope["message"])
	}
}
