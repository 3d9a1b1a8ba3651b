package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "modemarket/internal/log"
	"modemarket/internal/services"
	"modemarket/internal/validate"
)

type AuthHandler struct {
	Auth *services.AuthService
}

type loginRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Password string `json:"password" validate:"required,max=50"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return keyError(c, "body")
	}
	if err := validate.V.Struct(req); err != nil {
		return keyError(c, "credentials")
	}

	token, account, err := h.Auth.Login(req.Username, req.Password)
	if err != nil {
		applog.Security(c, "login.fail", map[string]any{"username": req.Username})
		return fail(c, err)
	}
	applog.Audit(c, "login.ok", map[string]any{"account_id": account.ID})
	return success(c, fiber.StatusOK, fiber.Map{
		"accessToken":      token,
		"accountId":        account.ID,
		"permissionTypeId": account.PermissionTypeID,
	})
}
