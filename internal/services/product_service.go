package services

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"modemarket/internal/domain"
	"modemarket/internal/repos"
)

type StockInput struct {
	ColorID int64
	SizeID  int64
	Remain  int
}

type CreateProduct struct {
	Product repos.NewProduct
	Images  []string
	Stocks  []StockInput
}

type ProductService struct {
	DB       *sqlx.DB
	Products *repos.ProductRepo
	Accounts *repos.AccountRepo
}

func NewProductService(db *sqlx.DB, products *repos.ProductRepo, accounts *repos.AccountRepo) *ProductService {
	return &ProductService{DB: db, Products: products, Accounts: accounts}
}

// Create writes the product, its generated code, images, stocks and the
// first history row in one transaction. Any step failing rolls back the
// whole creation.
func (s *ProductService) Create(in CreateProduct) (int64, string, error) {
	permission, err := s.Accounts.PermissionTypeID(in.Product.AccountID)
	if err != nil {
		return 0, "", err
	}
	if permission != domain.PermissionSeller && permission != domain.PermissionMaster {
		return 0, "", domain.ErrCustomerPermissionDenied
	}

	in.Product.DiscountedPrice = discountedPrice(in.Product.OriginPrice, in.Product.DiscountRate)

	tx, err := s.DB.Beginx()
	if err != nil {
		return 0, "", err
	}
	defer func() { _ = tx.Rollback() }()

	productID, err := s.Products.Insert(tx, in.Product)
	if err != nil {
		return 0, "", err
	}

	code := productCode(time.Now(), productID)
	if err := s.Products.UpdateProductCode(tx, productID, code); err != nil {
		return 0, "", err
	}

	for i, url := range in.Images {
		if err := s.Products.InsertImage(tx, productID, url, i+1); err != nil {
			return 0, "", err
		}
	}

	for _, st := range in.Stocks {
		optionCode := fmt.Sprintf("%s%02d%02d", code, st.ColorID, st.SizeID)
		if err := s.Products.InsertStock(tx, productID, optionCode, st.Remain, st.ColorID, st.SizeID); err != nil {
			return 0, "", err
		}
	}

	if err := s.Products.InsertHistory(tx, productID, in.Product); err != nil {
		return 0, "", err
	}

	if err := tx.Commit(); err != nil {
		return 0, "", domain.ErrDatabaseClose
	}
	return productID, code, nil
}

func (s *ProductService) Get(productID int64) (domain.Product, error) {
	return s.Products.Get(productID)
}

func discountedPrice(origin, rate decimal.Decimal) decimal.Decimal {
	return origin.Mul(decimal.NewFromInt(1).Sub(rate)).Round(2)
}

func productCode(now time.Time, productID int64) string {
	return fmt.Sprintf("PC%s%07d", now.Format("20060102"), productID)
}
