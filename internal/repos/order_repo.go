package repos

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"modemarket/internal/domain"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

// NewOrder carries the column values for an order insert. The order
// number is derived from the new row id afterwards, in the same
// transaction.
type NewOrder struct {
	AccountID          int64
	CartItemID         int64
	TotalPrice         decimal.Decimal
	SenderName         string
	SenderPhone        string
	SenderEmail        string
	RecipientName      string
	RecipientPhone     string
	Address1           string
	Address2           string
	PostNumber         string
	DeliveryMemoTypeID int64
	DeliveryContent    string
}

// OrderResult is what the completed-payment page reads back.
type OrderResult struct {
	OrderNumber string          `db:"order_number" json:"orderNumber"`
	TotalPrice  decimal.Decimal `db:"total_price" json:"totalPrice"`
}

func (r *OrderRepo) Insert(ext sqlx.Ext, o NewOrder) (int64, error) {
	res, err := ext.Exec(`
	  INSERT INTO orders(
	    account_id, cart_item_id, total_price,
	    sender_name, sender_phone, sender_email,
	    recipient_name, recipient_phone,
	    address1, address2, post_number,
	    delivery_memo_type_id, delivery_content
	  ) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)
	`, o.AccountID, o.CartItemID, o.TotalPrice,
		o.SenderName, o.SenderPhone, o.SenderEmail,
		o.RecipientName, o.RecipientPhone,
		o.Address1, o.Address2, o.PostNumber,
		o.DeliveryMemoTypeID, o.DeliveryContent)
	if err != nil {
		return 0, domain.ErrOrderCreateDenied
	}
	id, err := res.LastInsertId()
	if err != nil || id == 0 {
		return 0, domain.ErrOrderCreateDenied
	}
	return id, nil
}

func (r *OrderRepo) UpdateOrderNumber(ext sqlx.Ext, orderID int64, number string) error {
	res, err := ext.Exec(`
	  UPDATE orders SET order_number = ?
	  WHERE id = ?
	`, number, orderID)
	if err != nil {
		return domain.ErrOrderCreateDenied
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrOrderCreateDenied
	}
	return nil
}

func (r *OrderRepo) InsertItem(ext sqlx.Ext, orderID int64, itemCode string, productID, stockID int64, quantity int, price decimal.Decimal) error {
	res, err := ext.Exec(`
	  INSERT INTO order_items(order_item_code, order_id, product_id, stock_id, quantity, price)
	  VALUES (?,?,?,?,?,?)
	`, itemCode, orderID, productID, stockID, quantity, price)
	if err != nil {
		return domain.ErrOrderItemCreateDenied
	}
	if id, err := res.LastInsertId(); err != nil || id == 0 {
		return domain.ErrOrderItemCreateDenied
	}
	return nil
}

func (r *OrderRepo) InsertHistory(ext sqlx.Ext, orderID int64, statusTypeID int, updaterID int64) error {
	res, err := ext.Exec(`
	  INSERT INTO order_histories(order_id, status_type_id, updater_id)
	  VALUES (?,?,?)
	`, orderID, statusTypeID, updaterID)
	if err != nil {
		return domain.ErrOrderHistoryCreateDenied
	}
	if id, err := res.LastInsertId(); err != nil || id == 0 {
		return domain.ErrOrderHistoryCreateDenied
	}
	return nil
}

// DecrementStock subtracts quantity when enough stock remains. Zero rows
// affected means the option sold out under us.
func (r *OrderRepo) DecrementStock(ext sqlx.Ext, stockID int64, quantity int) error {
	res, err := ext.Exec(`
	  UPDATE stocks SET remain = remain - ?
	  WHERE id = ? AND is_deleted = 0 AND remain >= ?
	`, quantity, stockID, quantity)
	if err != nil {
		return domain.ErrStockDecreaseDenied
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrProductSoldOut
	}
	return nil
}

func (r *OrderRepo) Result(orderID, accountID int64) (OrderResult, error) {
	var out OrderResult
	err := r.db.Get(&out, `
	  SELECT order_number, total_price
	  FROM orders
	  WHERE id = ? AND account_id = ?
	`, orderID, accountID)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderResult{}, domain.ErrOrderDoesNotExist
	}
	return out, err
}
