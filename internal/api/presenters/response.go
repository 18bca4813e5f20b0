package presenters

import (
	"DineWise-Backend/domain"

	"github.com/gofiber/fiber/v2"
)

func SuccessResponse(c *fiber.Ctx, data any, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"status":  true,
		"message": message,
		"data":    data,
	})
}

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	resp := fiber.Map{
		"status":  false,
		"message": message,
	}
	if err != nil {
		resp["error"] = err.Error()
		resp["kind"] = domain.Kind(err)
	}
	return c.Status(status).JSON(resp)
}

// ServiceErrorResponse maps a service error onto the HTTP status implied by
// its kind, keeping the stable kind string in the payload.
func ServiceErrorResponse(c *fiber.Ctx, message string, err error) error {
	return ErrorResponse(c, StatusFromKind(domain.Kind(err)), message, err)
}

func StatusFromKind(kind string) int {
	switch kind {
	case domain.KindNotFound:
		return fiber.StatusNotFound
	case domain.KindConflict:
		return fiber.StatusConflict
	case domain.KindInvalidInput:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusBadGateway
	}
}
