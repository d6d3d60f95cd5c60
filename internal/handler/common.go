package handler

import (
	"errors"

	"go-inventory-api/internal/service"
	"go-inventory-api/pkg/apperr"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// respondError maps a service error onto the response contract. Stock
// rejections carry their figures as structured details next to the
// message, so clients can correct the request without parsing strings.
func respondError(c *fiber.Ctx, err error) error {
	status := apperr.HTTPStatus(err)
	if status == 500 {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	body := fiber.Map{"error": err.Error()}
	var stockErr *apperr.InsufficientStockError
	if errors.As(err, &stockErr) {
		body["details"] = stockErr
	}
	return c.Status(status).JSON(body)
}

// actor pulls the authenticated identity set by RequireAuth.
func actor(c *fiber.Ctx) service.Actor {
	a := service.Actor{}
	if id, ok := c.Locals("user_id").(string); ok {
		a.ID, _ = uuid.Parse(id)
	}
	if name, ok := c.Locals("user_name").(string); ok {
		a.Name = name
	}
	if email, ok := c.Locals("user_email").(string); ok {
		a.Email = email
	}
	return a
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(name))
}
