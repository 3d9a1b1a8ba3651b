package repos

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"modemarket/internal/domain"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

// NewProduct carries the column values for a product insert.
type NewProduct struct {
	SellerID            int64
	AccountID           int64
	IsDisplay           bool
	IsSale              bool
	MainCategoryID      int64
	SubCategoryID       int64
	IsProductNotice     bool
	Manufacturer        string
	ManufacturingDate   string
	ProductOriginTypeID int64
	Name                string
	Description         string
	DetailInformation   string
	OriginPrice         decimal.Decimal
	DiscountRate        decimal.Decimal
	DiscountedPrice     decimal.Decimal
	DiscountStartDate   string
	DiscountEndDate     string
	MinimumQuantity     int
	MaximumQuantity     int
}

// Insert writes the product row and returns its new id. Write methods
// take sqlx.Ext so product creation runs inside one transaction.
func (r *ProductRepo) Insert(ext sqlx.Ext, p NewProduct) (int64, error) {
	res, err := ext.Exec(`
	  INSERT INTO products(
	    seller_id, account_id, is_display, is_sale,
	    main_category_id, sub_category_id, is_product_notice,
	    manufacturer, manufacturing_date, product_origin_type_id,
	    name, description, detail_information,
	    origin_price, discount_rate, discounted_price,
	    discount_start_date, discount_end_date,
	    minimum_quantity, maximum_quantity
	  ) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)
	`, p.SellerID, p.AccountID, p.IsDisplay, p.IsSale,
		p.MainCategoryID, p.SubCategoryID, p.IsProductNotice,
		p.Manufacturer, p.ManufacturingDate, p.ProductOriginTypeID,
		p.Name, p.Description, p.DetailInformation,
		p.OriginPrice, p.DiscountRate, p.DiscountedPrice,
		p.DiscountStartDate, p.DiscountEndDate,
		p.MinimumQuantity, p.MaximumQuantity)
	if err != nil {
		return 0, domain.ErrProductCreateDenied
	}
	id, err := res.LastInsertId()
	if err != nil || id == 0 {
		return 0, domain.ErrProductCreateDenied
	}
	return id, nil
}

func (r *ProductRepo) UpdateProductCode(ext sqlx.Ext, productID int64, code string) error {
	res, err := ext.Exec(`
	  UPDATE products SET product_code = ?
	  WHERE id = ? AND is_deleted = 0
	`, code, productID)
	if err != nil {
		return domain.ErrProductCodeUpdateDenied
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrProductCodeUpdateDenied
	}
	return nil
}

func (r *ProductRepo) InsertImage(ext sqlx.Ext, productID int64, imageURL string, orderIndex int) error {
	res, err := ext.Exec(`
	  INSERT INTO product_images(image_url, product_id, order_index)
	  VALUES (?,?,?)
	`, imageURL, productID, orderIndex)
	if err != nil {
		return domain.ErrProductImageCreateDenied
	}
	if id, err := res.LastInsertId(); err != nil || id == 0 {
		return domain.ErrProductImageCreateDenied
	}
	return nil
}

func (r *ProductRepo) InsertStock(ext sqlx.Ext, productID int64, optionCode string, remain int, colorID, sizeID int64) error {
	res, err := ext.Exec(`
	  INSERT INTO stocks(product_option_code, remain, color_id, size_id, product_id)
	  VALUES (?,?,?,?,?)
	`, optionCode, remain, colorID, sizeID, productID)
	if err != nil {
		return domain.ErrStockCreateDenied
	}
	if id, err := res.LastInsertId(); err != nil || id == 0 {
		return domain.ErrStockCreateDenied
	}
	return nil
}

func (r *ProductRepo) InsertHistory(ext sqlx.Ext, productID int64, p NewProduct) error {
	res, err := ext.Exec(`
	  INSERT INTO product_histories(
	    product_id, product_name, is_display, is_sale,
	    origin_price, discounted_price, discount_rate,
	    discount_start_date, discount_end_date,
	    minimum_quantity, maximum_quantity,
	    updater_id, is_product_deleted
	  ) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,0)
	`, productID, p.Name, p.IsDisplay, p.IsSale,
		p.OriginPrice, p.DiscountedPrice, p.DiscountRate,
		p.DiscountStartDate, p.DiscountEndDate,
		p.MinimumQuantity, p.MaximumQuantity,
		p.AccountID)
	if err != nil {
		return domain.ErrProductHistoryCreateDenied
	}
	if id, err := res.LastInsertId(); err != nil || id == 0 {
		return domain.ErrProductHistoryCreateDenied
	}
	return nil
}

func (r *ProductRepo) Get(productID int64) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `
	  SELECT
	    id, COALESCE(product_code,'') AS product_code, seller_id, account_id,
	    is_display, is_sale, main_category_id, sub_category_id, is_product_notice,
	    manufacturer, manufacturing_date, product_origin_type_id,
	    name, description, detail_information,
	    origin_price, discount_rate, discounted_price,
	    discount_start_date, discount_end_date,
	    minimum_quantity, maximum_quantity, is_deleted,
	    created_at, COALESCE(updated_at,'') AS updated_at
	  FROM products
	  WHERE id = ? AND is_deleted = 0
	`, productID)
	return p, err
}

// StockRemain returns the remaining quantity for a stock row.
func (r *ProductRepo) StockRemain(productID, stockID int64) (int, error) {
	var remain int
	err := r.db.Get(&remain, `
	  SELECT remain FROM stocks
	  WHERE id = ? AND product_id = ? AND is_deleted = 0
	`, stockID, productID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, domain.ErrProductSoldOut
	}
	return remain, err
}
