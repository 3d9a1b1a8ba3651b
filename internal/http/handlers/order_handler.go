package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "modemarket/internal/log"
	"modemarket/internal/services"
	"modemarket/internal/validate"
)

type OrderHandler struct {
	Orders *services.OrderService
}

type placeOrderRequest struct {
	CartID             int64  `json:"cartId" validate:"required"`
	SenderName         string `json:"senderName" validate:"required,max=50"`
	SenderPhone        string `json:"senderPhone" validate:"required,phone"`
	SenderEmail        string `json:"senderEmail" validate:"required,email"`
	RecipientName      string `json:"recipientName" validate:"required,max=50"`
	RecipientPhone     string `json:"recipientPhone" validate:"required,phone"`
	Address1           string `json:"address1" validate:"required,max=200"`
	Address2           string `json:"address2" validate:"max=200"`
	PostNumber         string `json:"postNumber" validate:"required,postal"`
	DeliveryMemoTypeID int64  `json:"deliveryId"`
	DeliveryContent    string `json:"deliveryMemo" validate:"max=200"`
}

func (h *OrderHandler) Place(c *fiber.Ctx) error {
	var req placeOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return keyError(c, "body")
	}
	if err := validate.V.Struct(req); err != nil {
		return keyError(c, "order")
	}

	orderID, number, err := h.Orders.Place(services.PlaceOrder{
		AccountID:          accountFrom(c),
		CartItemID:         req.CartID,
		SenderName:         req.SenderName,
		SenderPhone:        req.SenderPhone,
		SenderEmail:        req.SenderEmail,
		RecipientName:      req.RecipientName,
		RecipientPhone:     req.RecipientPhone,
		Address1:           req.Address1,
		Address2:           req.Address2,
		PostNumber:         req.PostNumber,
		DeliveryMemoTypeID: req.DeliveryMemoTypeID,
		DeliveryContent:    req.DeliveryContent,
	})
	if err != nil {
		applog.Security(c, "order.place.fail", map[string]any{"cart_item_id": req.CartID, "error": err.Error()})
		return fail(c, err)
	}
	applog.Audit(c, "order.place", map[string]any{"order_id": orderID, "order_number": number})
	return success(c, fiber.StatusCreated, fiber.Map{
		"orderId":     orderID,
		"orderNumber": number,
	})
}

func (h *OrderHandler) Result(c *fiber.Ctx) error {
	orderID, ok := validate.Number(c.Params("id"))
	if !ok {
		return keyError(c, "order")
	}
	result, err := h.Orders.Result(orderID, accountFrom(c))
	if err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, result)
}

func (h *OrderHandler) Sender(c *fiber.Ctx) error {
	info, err := h.Orders.Sender(accountFrom(c))
	if err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, info)
}
