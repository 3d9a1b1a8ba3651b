package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"modemarket/internal/domain"
	applog "modemarket/internal/log"
)

func success(c *fiber.Ctx, status int, result any) error {
	body := fiber.Map{"message": "success"}
	if result != nil {
		body["result"] = result
	}
	return c.Status(status).JSON(body)
}

// fail renders the error envelope for a named failure; anything that is
// not an AppError becomes the generic server error.
func fail(c *fiber.Ctx, err error) error {
	var appErr *domain.AppError
	if !errors.As(err, &appErr) {
		appErr = domain.ErrServer
	}
	if appErr.Status >= fiber.StatusInternalServerError {
		applog.Error(c, "request.fail", err, nil)
	}
	return c.Status(appErr.Status).JSON(fiber.Map{
		"message":      appErr.Kind,
		"errorMessage": appErr.Code,
	})
}

func keyError(c *fiber.Ctx, field string) error {
	applog.Security(c, "validation.fail", map[string]any{"field": field})
	return fail(c, domain.ErrKeyError)
}
