package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	applog "modemarket/internal/log"
	"modemarket/internal/repos"
	"modemarket/internal/services"
	"modemarket/internal/validate"
)

type CartHandler struct {
	Carts *services.CartService
}

type createCartItemRequest struct {
	ProductID       int64  `json:"productId" validate:"required"`
	StockID         int64  `json:"stockId" validate:"required"`
	Quantity        int    `json:"quantity" validate:"required,min=1,max=20"`
	OriginalPrice   string `json:"originalPrice" validate:"required,decimalstr"`
	Sale            string `json:"sale" validate:"omitempty,decimalstr"`
	DiscountedPrice string `json:"discountedPrice" validate:"required,decimalstr"`
}

func (h *CartHandler) Create(c *fiber.Ctx) error {
	var req createCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return keyError(c, "body")
	}
	if err := validate.V.Struct(req); err != nil {
		return keyError(c, "cartItem")
	}

	originalPrice, err := decimal.NewFromString(req.OriginalPrice)
	if err != nil {
		return keyError(c, "originalPrice")
	}
	discountedPrice, err := decimal.NewFromString(req.DiscountedPrice)
	if err != nil {
		return keyError(c, "discountedPrice")
	}
	sale := decimal.Zero
	if req.Sale != "" {
		if sale, err = decimal.NewFromString(req.Sale); err != nil {
			return keyError(c, "sale")
		}
	}

	id, err := h.Carts.Create(repos.NewCartItem{
		AccountID:       accountFrom(c),
		ProductID:       req.ProductID,
		StockID:         req.StockID,
		Quantity:        req.Quantity,
		OriginalPrice:   originalPrice,
		Sale:            sale,
		DiscountedPrice: discountedPrice,
	})
	if err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "cart.create", map[string]any{"cart_item_id": id})
	return success(c, fiber.StatusCreated, fiber.Map{"cartItemId": id})
}

func (h *CartHandler) Detail(c *fiber.Ctx) error {
	cartItemID, ok := validate.Number(c.Params("id"))
	if !ok {
		return keyError(c, "cartItem")
	}
	item, err := h.Carts.Get(cartItemID, accountFrom(c))
	if err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, item)
}
