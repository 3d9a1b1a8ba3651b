package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"modemarket/internal/services"
	"modemarket/internal/validate"
)

type SellerHandler struct {
	Sellers *services.SellerService
}

func (h *SellerHandler) Info(c *fiber.Ctx) error {
	sellerID, ok := validate.Number(c.Params("id"))
	if !ok {
		return keyError(c, "seller")
	}
	info, err := h.Sellers.Info(sellerID)
	if err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, info)
}

func (h *SellerHandler) Categories(c *fiber.Ctx) error {
	sellerID, ok := validate.Number(c.Params("id"))
	if !ok {
		return keyError(c, "seller")
	}
	categories, err := h.Sellers.Categories(sellerID)
	if err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, categories)
}

func (h *SellerHandler) Products(c *fiber.Ctx) error {
	sellerID, ok := validate.Number(c.Params("id"))
	if !ok {
		return keyError(c, "seller")
	}

	q := strings.TrimSpace(c.Query("q"))
	if len(q) > 50 {
		q = q[:50]
	}
	limit, _ := strconv.Atoi(c.Query("limit", "30"))
	if limit < 1 || limit > 100 {
		limit = 30
	}
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	if offset < 0 {
		offset = 0
	}

	products, err := h.Sellers.Products(sellerID, strings.ToLower(q), limit, offset)
	if err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, products)
}
