package utils

import (
	"math"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func SuccessResponse(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "success",
		"data":   data,
	})
}

// SuccessListResponse adds the result count that list endpoints carry.
func SuccessListResponse(c *fiber.Ctx, status int, result int, data any) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "success",
		"result": result,
		"data":   data,
	})
}

func MessageResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"status":  "success",
		"message": message,
	})
}

// Round2 rounds to 2 decimal places, the precision ratings are stored at.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// SplitList splits a comma separated column into a trimmed slice.
func SplitList(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func JoinList(items []string) string {
	return strings.Join(items, ",")
}
