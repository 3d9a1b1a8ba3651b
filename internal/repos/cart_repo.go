package repos

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"modemarket/internal/domain"
)

type CartRepo struct{ db *sqlx.DB }

func NewCartRepo(db *sqlx.DB) *CartRepo { return &CartRepo{db: db} }

// NewCartItem carries the column values for a cart item insert.
type NewCartItem struct {
	AccountID       int64
	ProductID       int64
	StockID         int64
	Quantity        int
	OriginalPrice   decimal.Decimal
	Sale            decimal.Decimal
	DiscountedPrice decimal.Decimal
}

func (r *CartRepo) Insert(ext sqlx.Ext, item NewCartItem) (int64, error) {
	res, err := ext.Exec(`
	  INSERT INTO cart_items(account_id, product_id, stock_id, quantity,
	                         original_price, sale, discounted_price)
	  VALUES (?,?,?,?,?,?,?)
	`, item.AccountID, item.ProductID, item.StockID, item.Quantity,
		item.OriginalPrice, item.Sale, item.DiscountedPrice)
	if err != nil {
		return 0, domain.ErrCartItemCreateDenied
	}
	id, err := res.LastInsertId()
	if err != nil || id == 0 {
		return 0, domain.ErrCartItemCreateDenied
	}
	return id, nil
}

// Get returns a live cart item of the account. Sold-out is computed from
// the stock row's remaining quantity at read time.
func (r *CartRepo) Get(cartItemID, accountID int64) (domain.CartItem, error) {
	var item domain.CartItem
	err := r.db.Get(&item, `
	  SELECT ci.id, ci.account_id, ci.product_id, ci.stock_id, ci.quantity,
	         ci.original_price, ci.sale, ci.discounted_price,
	         (s.remain < ci.quantity) AS sold_out,
	         ci.is_deleted, ci.created_at
	  FROM cart_items ci
	  JOIN stocks s ON s.id = ci.stock_id
	  WHERE ci.id = ? AND ci.account_id = ? AND ci.is_deleted = 0
	`, cartItemID, accountID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.CartItem{}, domain.ErrCartItemDoesNotExist
	}
	return item, err
}

// SoftDelete consumes a cart item after its order is placed.
func (r *CartRepo) SoftDelete(ext sqlx.Ext, cartItemID int64) error {
	res, err := ext.Exec(`
	  UPDATE cart_items SET is_deleted = 1
	  WHERE id = ? AND is_deleted = 0
	`, cartItemID)
	if err != nil {
		return domain.ErrCartItemDoesNotExist
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrCartItemDoesNotExist
	}
	return nil
}
