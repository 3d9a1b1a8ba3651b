package services

import (
	"github.com/jmoiron/sqlx"

	"modemarket/internal/domain"
	"modemarket/internal/repos"
)

type CartService struct {
	DB       *sqlx.DB
	Carts    *repos.CartRepo
	Products *repos.ProductRepo
	Accounts *repos.AccountRepo
}

func NewCartService(db *sqlx.DB, carts *repos.CartRepo, products *repos.ProductRepo, accounts *repos.AccountRepo) *CartService {
	return &CartService{DB: db, Carts: carts, Products: products, Accounts: accounts}
}

func (s *CartService) requireCustomer(accountID int64) error {
	permission, err := s.Accounts.PermissionTypeID(accountID)
	if err != nil {
		return err
	}
	if permission != domain.PermissionUser {
		return domain.ErrCustomerPermissionDenied
	}
	return nil
}

// Create adds a cart item after checking the product option still has
// enough stock.
func (s *CartService) Create(item repos.NewCartItem) (int64, error) {
	if err := s.requireCustomer(item.AccountID); err != nil {
		return 0, err
	}
	if _, err := s.Products.Get(item.ProductID); err != nil {
		return 0, domain.ErrCartItemCreateDenied
	}
	remain, err := s.Products.StockRemain(item.ProductID, item.StockID)
	if err != nil {
		return 0, err
	}
	if remain < item.Quantity {
		return 0, domain.ErrProductSoldOut
	}
	return s.Carts.Insert(s.DB, item)
}

func (s *CartService) Get(cartItemID, accountID int64) (domain.CartItem, error) {
	if err := s.requireCustomer(accountID); err != nil {
		return domain.CartItem{}, err
	}
	return s.Carts.Get(cartItemID, accountID)
}
