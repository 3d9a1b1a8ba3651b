package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"modemarket/internal/domain"
	applog "modemarket/internal/log"
	"modemarket/internal/services"
)

// RequireSignin parses the bearer token and stores the account id and
// permission type on the request context.
func RequireSignin(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token := strings.TrimPrefix(header, "Bearer ")
		if token == "" || token == header {
			applog.Security(c, "auth.missing", nil)
			return fail(c, domain.ErrAccountDoesNotExist)
		}
		accountID, permission, err := auth.Verify(token)
		if err != nil {
			applog.Security(c, "auth.invalid", nil)
			return fail(c, err)
		}
		c.Locals("account_id", accountID)
		c.Locals("permission_type_id", permission)
		return c.Next()
	}
}

func accountFrom(c *fiber.Ctx) int64 {
	id, _ := c.Locals("account_id").(int64)
	return id
}
