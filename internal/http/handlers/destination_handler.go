package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "modemarket/internal/log"
	"modemarket/internal/repos"
	"modemarket/internal/services"
	"modemarket/internal/validate"
)

type DestinationHandler struct {
	Destinations *services.DestinationService
}

type destinationRequest struct {
	Recipient       string `json:"recipient" validate:"required,max=50"`
	Phone           string `json:"phone" validate:"required,phone"`
	Address1        string `json:"address1" validate:"required,max=200"`
	Address2        string `json:"address2" validate:"max=200"`
	PostNumber      string `json:"postNumber" validate:"required,postal"`
	DefaultLocation bool   `json:"defaultLocation"`
}

func (h *DestinationHandler) parse(c *fiber.Ctx) (repos.NewDestination, bool) {
	var req destinationRequest
	if err := c.BodyParser(&req); err != nil {
		return repos.NewDestination{}, false
	}
	if err := validate.V.Struct(req); err != nil {
		return repos.NewDestination{}, false
	}
	return repos.NewDestination{
		AccountID:       accountFrom(c),
		Recipient:       req.Recipient,
		Phone:           req.Phone,
		Address1:        req.Address1,
		Address2:        req.Address2,
		PostNumber:      req.PostNumber,
		DefaultLocation: req.DefaultLocation,
	}, true
}

func (h *DestinationHandler) Create(c *fiber.Ctx) error {
	d, ok := h.parse(c)
	if !ok {
		return keyError(c, "destination")
	}
	id, err := h.Destinations.Create(d)
	if err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "destination.create", map[string]any{"destination_id": id})
	return success(c, fiber.StatusCreated, fiber.Map{"destinationId": id})
}

func (h *DestinationHandler) Detail(c *fiber.Ctx) error {
	destinationID, ok := validate.Number(c.Params("id"))
	if !ok {
		return keyError(c, "destination")
	}
	d, err := h.Destinations.Detail(destinationID)
	if err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, d)
}

func (h *DestinationHandler) List(c *fiber.Ctx) error {
	destinations, err := h.Destinations.ListByAccount(accountFrom(c))
	if err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, destinations)
}

func (h *DestinationHandler) Update(c *fiber.Ctx) error {
	destinationID, ok := validate.Number(c.Params("id"))
	if !ok {
		return keyError(c, "destination")
	}
	d, ok := h.parse(c)
	if !ok {
		return keyError(c, "destination")
	}
	if err := h.Destinations.Update(destinationID, accountFrom(c), d); err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "destination.update", map[string]any{"destination_id": destinationID})
	return success(c, fiber.StatusOK, nil)
}

func (h *DestinationHandler) Delete(c *fiber.Ctx) error {
	destinationID, ok := validate.Number(c.Params("id"))
	if !ok {
		return keyError(c, "destination")
	}
	if err := h.Destinations.Delete(destinationID, accountFrom(c)); err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "destination.delete", map[string]any{"destination_id": destinationID})
	return success(c, fiber.StatusOK, nil)
}
