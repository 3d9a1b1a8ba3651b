package services

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"modemarket/internal/domain"
	"modemarket/internal/repos"
)

// PlaceOrder is the checkout payload: the cart item being paid for plus
// sender and shipping details.
type PlaceOrder struct {
	AccountID          int64
	CartItemID         int64
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

type OrderService struct {
	DB       *sqlx.DB
	Orders   *repos.OrderRepo
	Carts    *repos.CartRepo
	Accounts *repos.AccountRepo
}

func NewOrderService(db *sqlx.DB, orders *repos.OrderRepo, carts *repos.CartRepo, accounts *repos.AccountRepo) *OrderService {
	return &OrderService{DB: db, Orders: orders, Carts: carts, Accounts: accounts}
}

func (s *OrderService) requireCustomer(accountID int64) error {
	permission, err := s.Accounts.PermissionTypeID(accountID)
	if err != nil {
		return err
	}
	if permission != domain.PermissionUser {
		return domain.ErrCustomerPermissionDenied
	}
	return nil
}

// Place turns a cart item into an order: order row, order item, history,
// stock decrement and cart-item consumption commit together or not at
// all. The stock UPDATE carries its own remain >= quantity guard, so the
// sold-out pre-check racing another checkout still fails safely.
func (s *OrderService) Place(in PlaceOrder) (int64, string, error) {
	if err := s.requireCustomer(in.AccountID); err != nil {
		return 0, "", err
	}

	item, err := s.Carts.Get(in.CartItemID, in.AccountID)
	if err != nil {
		return 0, "", err
	}
	if item.SoldOut {
		return 0, "", domain.ErrProductSoldOut
	}

	total := item.DiscountedPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))

	tx, err := s.DB.Beginx()
	if err != nil {
		return 0, "", err
	}
	defer func() { _ = tx.Rollback() }()

	orderID, err := s.Orders.Insert(tx, repos.NewOrder{
		AccountID:          in.AccountID,
		CartItemID:         item.ID,
		TotalPrice:         total,
		SenderName:         in.SenderName,
		SenderPhone:        in.SenderPhone,
		SenderEmail:        in.SenderEmail,
		RecipientName:      in.RecipientName,
		RecipientPhone:     in.RecipientPhone,
		Address1:           in.Address1,
		Address2:           in.Address2,
		PostNumber:         in.PostNumber,
		DeliveryMemoTypeID: in.DeliveryMemoTypeID,
		DeliveryContent:    in.DeliveryContent,
	})
	if err != nil {
		return 0, "", err
	}

	// The row id makes the number unique even for same-instant checkouts.
	number := orderNumber(time.Now(), orderID)
	if err := s.Orders.UpdateOrderNumber(tx, orderID, number); err != nil {
		return 0, "", err
	}

	itemCode := fmt.Sprintf("%s001", number)
	if err := s.Orders.InsertItem(tx, orderID, itemCode, item.ProductID, item.StockID, item.Quantity, item.DiscountedPrice); err != nil {
		return 0, "", err
	}
	if err := s.Orders.InsertHistory(tx, orderID, 1, in.AccountID); err != nil {
		return 0, "", err
	}
	if err := s.Orders.DecrementStock(tx, item.StockID, item.Quantity); err != nil {
		return 0, "", err
	}
	if err := s.Carts.SoftDelete(tx, item.ID); err != nil {
		return 0, "", err
	}

	if err := tx.Commit(); err != nil {
		return 0, "", domain.ErrDatabaseClose
	}
	return orderID, number, nil
}

func (s *OrderService) Result(orderID, accountID int64) (repos.OrderResult, error) {
	if err := s.requireCustomer(accountID); err != nil {
		return repos.OrderResult{}, err
	}
	return s.Orders.Result(orderID, accountID)
}

// Sender returns the checkout sender contact; a user without a customer
// information row gets empty-string fields.
func (s *OrderService) Sender(accountID int64) (domain.CustomerInfo, error) {
	if err := s.requireCustomer(accountID); err != nil {
		return domain.CustomerInfo{}, err
	}
	return s.Accounts.SenderInfo(accountID)
}

func orderNumber(now time.Time, orderID int64) string {
	return now.Format("20060102") + fmt.Sprintf("%09d", orderID)
}
