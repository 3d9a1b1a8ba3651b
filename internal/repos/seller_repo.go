package repos

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"modemarket/internal/domain"
)

type SellerRepo struct{ db *sqlx.DB }

func NewSellerRepo(db *sqlx.DB) *SellerRepo { return &SellerRepo{db: db} }

// StorefrontProduct is the list row shown on a seller's shop page.
type StorefrontProduct struct {
	ID              int64           `db:"id" json:"id"`
	Name            string          `db:"name" json:"name"`
	ImageURL        string          `db:"image_url" json:"imageUrl"`
	OriginPrice     decimal.Decimal `db:"origin_price" json:"originPrice"`
	DiscountRate    decimal.Decimal `db:"discount_rate" json:"discountRate"`
	DiscountedPrice decimal.Decimal `db:"discounted_price" json:"discountedPrice"`
	SoldOut         bool            `db:"sold_out" json:"soldOut"`
}

func (r *SellerRepo) Info(sellerID int64) (domain.Seller, error) {
	var s domain.Seller
	err := r.db.Get(&s, `
	  SELECT id, name, english_name, profile_image_url, background_image_url,
	         introduction, description
	  FROM sellers
	  WHERE id = ?
	`, sellerID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Seller{}, domain.ErrSellerDoesNotExist
	}
	return s, err
}

func (r *SellerRepo) Categories(sellerID int64) ([]domain.SellerCategory, error) {
	out := []domain.SellerCategory{}
	err := r.db.Select(&out, `
	  SELECT id, seller_id, name
	  FROM seller_categories
	  WHERE seller_id = ?
	  ORDER BY id
	`, sellerID)
	return out, err
}

// Products lists a seller's displayed products, optionally filtered by a
// name search. Sold-out means no stock row has remaining quantity.
func (r *SellerRepo) Products(sellerID int64, q string, limit, offset int) ([]StorefrontProduct, error) {
	where := `p.seller_id = ? AND p.is_display = 1 AND p.is_deleted = 0`
	args := []any{sellerID}
	if q != "" {
		where += ` AND LOWER(p.name) LIKE ?`
		args = append(args, "%"+q+"%")
	}

	query := `
	  SELECT
	    p.id, p.name,
	    COALESCE((SELECT pi.image_url FROM product_images pi
	              WHERE pi.product_id = p.id AND pi.is_deleted = 0
	              ORDER BY pi.order_index LIMIT 1),'') AS image_url,
	    p.origin_price, p.discount_rate, p.discounted_price,
	    NOT EXISTS (SELECT 1 FROM stocks s
	                WHERE s.product_id = p.id AND s.is_deleted = 0 AND s.remain > 0
	    ) AS sold_out
	  FROM products p
	  WHERE ` + where + `
	  ORDER BY p.id DESC
	  LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	out := []StorefrontProduct{}
	err := r.db.Select(&out, query, args...)
	return out, err
}
