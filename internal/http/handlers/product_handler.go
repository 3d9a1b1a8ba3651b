package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	applog "modemarket/internal/log"
	"modemarket/internal/repos"
	"modemarket/internal/services"
	"modemarket/internal/validate"
)

type ProductHandler struct {
	Products *services.ProductService
}

type stockRequest struct {
	ColorID int64 `json:"colorId" validate:"required"`
	SizeID  int64 `json:"sizeId" validate:"required"`
	Remain  int   `json:"remain" validate:"min=0"`
}

type createProductRequest struct {
	SellerID            int64          `json:"sellerId" validate:"required"`
	IsDisplay           bool           `json:"isDisplay"`
	IsSale              bool           `json:"isSale"`
	MainCategoryID      int64          `json:"mainCategoryId" validate:"required"`
	SubCategoryID       int64          `json:"subCategoryId" validate:"required"`
	IsProductNotice     bool           `json:"isProductNotice"`
	Manufacturer        string         `json:"manufacturer"`
	ManufacturingDate   string         `json:"manufacturingDate"`
	ProductOriginTypeID int64          `json:"productOriginTypeId"`
	Name                string         `json:"name" validate:"required,max=100"`
	Description         string         `json:"description"`
	DetailInformation   string         `json:"detailInformation"`
	OriginPrice         string         `json:"originPrice" validate:"required,decimalstr"`
	DiscountRate        string         `json:"discountRate" validate:"omitempty,decimalstr"`
	DiscountStartDate   string         `json:"discountStartDate"`
	DiscountEndDate     string         `json:"discountEndDate"`
	MinimumQuantity     int            `json:"minimumQuantity" validate:"min=1"`
	MaximumQuantity     int            `json:"maximumQuantity" validate:"min=1"`
	Images              []string       `json:"images" validate:"required,min=1,dive,required"`
	Stocks              []stockRequest `json:"stocks" validate:"required,min=1,dive"`
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var req createProductRequest
	if err := c.BodyParser(&req); err != nil {
		return keyError(c, "body")
	}
	if err := validate.V.Struct(req); err != nil {
		return keyError(c, "product")
	}

	originPrice, err := decimal.NewFromString(req.OriginPrice)
	if err != nil {
		return keyError(c, "originPrice")
	}
	discountRate := decimal.Zero
	if req.DiscountRate != "" {
		if discountRate, err = decimal.NewFromString(req.DiscountRate); err != nil {
			return keyError(c, "discountRate")
		}
	}

	in := services.CreateProduct{
		Product: repos.NewProduct{
			SellerID:            req.SellerID,
			AccountID:           accountFrom(c),
			IsDisplay:           req.IsDisplay,
			IsSale:              req.IsSale,
			MainCategoryID:      req.MainCategoryID,
			SubCategoryID:       req.SubCategoryID,
			IsProductNotice:     req.IsProductNotice,
			Manufacturer:        req.Manufacturer,
			ManufacturingDate:   req.ManufacturingDate,
			ProductOriginTypeID: req.ProductOriginTypeID,
			Name:                req.Name,
			Description:         req.Description,
			DetailInformation:   req.DetailInformation,
			OriginPrice:         originPrice,
			DiscountRate:        discountRate,
			DiscountStartDate:   req.DiscountStartDate,
			DiscountEndDate:     req.DiscountEndDate,
			MinimumQuantity:     req.MinimumQuantity,
			MaximumQuantity:     req.MaximumQuantity,
		},
		Images: req.Images,
	}
	for _, st := range req.Stocks {
		in.Stocks = append(in.Stocks, services.StockInput{ColorID: st.ColorID, SizeID: st.SizeID, Remain: st.Remain})
	}

	productID, code, err := h.Products.Create(in)
	if err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "product.create", map[string]any{"product_id": productID, "product_code": code})
	return success(c, fiber.StatusCreated, fiber.Map{
		"productId":   productID,
		"productCode": code,
	})
}
