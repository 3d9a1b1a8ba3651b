package services_test

import (
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modemarket/internal/domain"
	"modemarket/internal/repos"
	"modemarket/internal/services"
)

// memdb opens a seeded in-memory database (accounts 1-4, seller 2,
// products 1-2, stocks 1-3 per the demo seed).
func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newProductService(db *sqlx.DB) *services.ProductService {
	return services.NewProductService(db, repos.NewProductRepo(db), repos.NewAccountRepo(db))
}

func createInput(stocks ...services.StockInput) services.CreateProduct {
	return services.CreateProduct{
		Product: repos.NewProduct{
			SellerID:        2,
			AccountID:       2,
			IsDisplay:       true,
			IsSale:          true,
			MainCategoryID:  1,
			SubCategoryID:   2,
			Name:            "Denim Jacket",
			Description:     "Washed denim jacket",
			OriginPrice:     decimal.RequireFromString("10000"),
			DiscountRate:    decimal.RequireFromString("0.10"),
			MinimumQuantity: 1,
			MaximumQuantity: 20,
		},
		Images: []string{"images/products/new/main.jpg", "images/products/new/side.jpg"},
		Stocks: stocks,
	}
}

func TestProductService_CreateCommitsAllRows(t *testing.T) {
	db := memdb(t)
	svc := newProductService(db)

	in := createInput(
		services.StockInput{ColorID: 1, SizeID: 1, Remain: 10},
		services.StockInput{ColorID: 2, SizeID: 1, Remain: 4},
	)

	productID, code, err := svc.Create(in)
	require.NoError(t, err)
	assert.Greater(t, productID, int64(0))
	assert.True(t, strings.HasPrefix(code, "PC"))

	p, err := svc.Get(productID)
	require.NoError(t, err)
	assert.Equal(t, code, p.ProductCode)
	// 10000 * (1 - 0.10)
	assert.True(t, p.DiscountedPrice.Equal(decimal.RequireFromString("9000")), "got %s", p.DiscountedPrice)

	var images, stocks, histories int
	require.NoError(t, db.Get(&images, `SELECT COUNT(*) FROM product_images WHERE product_id = ?`, productID))
	require.NoError(t, db.Get(&stocks, `SELECT COUNT(*) FROM stocks WHERE product_id = ?`, productID))
	require.NoError(t, db.Get(&histories, `SELECT COUNT(*) FROM product_histories WHERE product_id = ?`, productID))
	assert.Equal(t, 2, images)
	assert.Equal(t, 2, stocks)
	assert.Equal(t, 1, histories)
}

func TestProductService_CreateRollsBackOnFailedStep(t *testing.T) {
	db := memdb(t)
	svc := newProductService(db)

	var before int
	require.NoError(t, db.Get(&before, `SELECT COUNT(*) FROM products`))

	// Duplicate color/size yields a duplicate option code, so the second
	// stock insert fails and the whole creation must roll back.
	in := createInput(
		services.StockInput{ColorID: 1, SizeID: 1, Remain: 10},
		services.StockInput{ColorID: 1, SizeID: 1, Remain: 4},
	)

	_, _, err := svc.Create(in)
	assert.ErrorIs(t, err, domain.ErrStockCreateDenied)

	var after, images, histories int
	require.NoError(t, db.Get(&after, `SELECT COUNT(*) FROM products`))
	require.NoError(t, db.Get(&images, `SELECT COUNT(*) FROM product_images`))
	require.NoError(t, db.Get(&histories, `SELECT COUNT(*) FROM product_histories`))
	assert.Equal(t, before, after, "product insert should have rolled back")
	assert.Equal(t, 2, images, "only the seeded images should remain")
	assert.Equal(t, 0, histories)
}

func TestProductService_CreatePermissions(t *testing.T) {
	db := memdb(t)
	svc := newProductService(db)

	in := createInput(services.StockInput{ColorID: 1, SizeID: 1, Remain: 1})
	in.Product.AccountID = 3 // customer account
	_, _, err := svc.Create(in)
	assert.ErrorIs(t, err, domain.ErrCustomerPermissionDenied)

	in.Product.AccountID = 999
	_, _, err = svc.Create(in)
	assert.ErrorIs(t, err, domain.ErrAccountDoesNotExist)
}
