package domain

import "github.com/shopspring/decimal"

// Permission types stored on accounts.
const (
	PermissionMaster = 1
	PermissionSeller = 2
	PermissionUser   = 3
)

type Account struct {
	ID               int64  `db:"id"`
	Username         string `db:"username"`
	PasswordHash     string `db:"password_hash"`
	PermissionTypeID int    `db:"permission_type_id"`
	IsDeleted        bool   `db:"is_deleted"`
}

type CustomerInfo struct {
	AccountID int64  `db:"account_id" json:"-"`
	Name      string `db:"name" json:"name"`
	Phone     string `db:"phone" json:"phone"`
	Email     string `db:"email" json:"email"`
}

type Seller struct {
	ID                 int64  `db:"id" json:"id"`
	Name               string `db:"name" json:"name"`
	EnglishName        string `db:"english_name" json:"englishName"`
	ProfileImageURL    string `db:"profile_image_url" json:"profileImageUrl"`
	BackgroundImageURL string `db:"background_image_url" json:"backgroundImageUrl"`
	Introduction       string `db:"introduction" json:"introduction"`
	Description        string `db:"description" json:"description"`
}

type SellerCategory struct {
	ID       int64  `db:"id" json:"id"`
	SellerID int64  `db:"seller_id" json:"-"`
	Name     string `db:"name" json:"name"`
}

type Product struct {
	ID                  int64           `db:"id" json:"id"`
	ProductCode         string          `db:"product_code" json:"productCode"`
	SellerID            int64           `db:"seller_id" json:"sellerId"`
	AccountID           int64           `db:"account_id" json:"-"`
	IsDisplay           bool            `db:"is_display" json:"isDisplay"`
	IsSale              bool            `db:"is_sale" json:"isSale"`
	MainCategoryID      int64           `db:"main_category_id" json:"mainCategoryId"`
	SubCategoryID       int64           `db:"sub_category_id" json:"subCategoryId"`
	IsProductNotice     bool            `db:"is_product_notice" json:"isProductNotice"`
	Manufacturer        string          `db:"manufacturer" json:"manufacturer"`
	ManufacturingDate   string          `db:"manufacturing_date" json:"manufacturingDate"`
	ProductOriginTypeID int64           `db:"product_origin_type_id" json:"productOriginTypeId"`
	Name                string          `db:"name" json:"name"`
	Description         string          `db:"description" json:"description"`
	DetailInformation   string          `db:"detail_information" json:"detailInformation"`
	OriginPrice         decimal.Decimal `db:"origin_price" json:"originPrice"`
	DiscountRate        decimal.Decimal `db:"discount_rate" json:"discountRate"`
	DiscountedPrice     decimal.Decimal `db:"discounted_price" json:"discountedPrice"`
	DiscountStartDate   string          `db:"discount_start_date" json:"discountStartDate"`
	DiscountEndDate     string          `db:"discount_end_date" json:"discountEndDate"`
	MinimumQuantity     int             `db:"minimum_quantity" json:"minimumQuantity"`
	MaximumQuantity     int             `db:"maximum_quantity" json:"maximumQuantity"`
	IsDeleted           bool            `db:"is_deleted" json:"-"`
	CreatedAt           string          `db:"created_at" json:"createdAt"`
	UpdatedAt           string          `db:"updated_at" json:"updatedAt,omitempty"`
}

type ProductImage struct {
	ID         int64  `db:"id"`
	ImageURL   string `db:"image_url"`
	ProductID  int64  `db:"product_id"`
	OrderIndex int    `db:"order_index"`
	IsDeleted  bool   `db:"is_deleted"`
}

type Stock struct {
	ID                int64  `db:"id"`
	ProductOptionCode string `db:"product_option_code"`
	Remain            int    `db:"remain"`
	ColorID           int64  `db:"color_id"`
	SizeID            int64  `db:"size_id"`
	ProductID         int64  `db:"product_id"`
	IsDeleted         bool   `db:"is_deleted"`
}

type Destination struct {
	ID              int64  `db:"id" json:"id"`
	AccountID       int64  `db:"account_id" json:"-"`
	Recipient       string `db:"recipient" json:"recipient"`
	Phone           string `db:"phone" json:"phone"`
	Address1        string `db:"address1" json:"address1"`
	Address2        string `db:"address2" json:"address2"`
	PostNumber      string `db:"post_number" json:"postNumber"`
	DefaultLocation bool   `db:"default_location" json:"defaultLocation"`
	IsDeleted       bool   `db:"is_deleted" json:"-"`
	CreatedAt       string `db:"created_at" json:"createdAt"`
	UpdatedAt       string `db:"updated_at" json:"updatedAt,omitempty"`
}

type CartItem struct {
	ID              int64           `db:"id" json:"id"`
	AccountID       int64           `db:"account_id" json:"-"`
	ProductID       int64           `db:"product_id" json:"productId"`
	StockID         int64           `db:"stock_id" json:"stockId"`
	Quantity        int             `db:"quantity" json:"quantity"`
	OriginalPrice   decimal.Decimal `db:"original_price" json:"originalPrice"`
	Sale            decimal.Decimal `db:"sale" json:"sale"`
	DiscountedPrice decimal.Decimal `db:"discounted_price" json:"discountedPrice"`
	SoldOut         bool            `db:"sold_out" json:"soldOut"`
	IsDeleted       bool            `db:"is_deleted" json:"-"`
	CreatedAt       string          `db:"created_at" json:"createdAt"`
}
