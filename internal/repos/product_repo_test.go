package repos_test

import (
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modemarket/internal/domain"
	"modemarket/internal/repos"
)

func mockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	raw, mock, err := sqlmock.New()
	require.NoError(t, err)
	db := sqlx.NewDb(raw, "sqlmock")
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return db, mock
}

func sampleProduct() repos.NewProduct {
	return repos.NewProduct{
		SellerID:        1,
		AccountID:       2,
		Name:            "wool coat",
		OriginPrice:     decimal.RequireFromString("89000"),
		DiscountRate:    decimal.RequireFromString("0.10"),
		DiscountedPrice: decimal.RequireFromString("80100"),
		MinimumQuantity: 1,
		MaximumQuantity: 20,
	}
}

func TestProductRepo_InsertMapsDriverError(t *testing.T) {
	db, mock := mockDB(t)
	repo := repos.NewProductRepo(db)

	mock.ExpectExec("INSERT INTO products").
		WillReturnError(errors.New("disk I/O error"))

	_, err := repo.Insert(db, sampleProduct())
	assert.ErrorIs(t, err, domain.ErrProductCreateDenied)
}

func TestProductRepo_InsertReturnsNewID(t *testing.T) {
	db, mock := mockDB(t)
	repo := repos.NewProductRepo(db)

	mock.ExpectExec("INSERT INTO products").
		WillReturnResult(sqlmock.NewResult(7, 1))

	id, err := repo.Insert(db, sampleProduct())
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
}

func TestProductRepo_UpdateProductCodeZeroRows(t *testing.T) {
	db, mock := mockDB(t)
	repo := repos.NewProductRepo(db)

	// A deleted or unknown product matches no row.
	mock.ExpectExec("UPDATE products SET product_code").
		WithArgs("PC202608300000007", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateProductCode(db, 7, "PC202608300000007")
	assert.ErrorIs(t, err, domain.ErrProductCodeUpdateDenied)
}

func TestProductRepo_InsertStockMapsDriverError(t *testing.T) {
	db, mock := mockDB(t)
	repo := repos.NewProductRepo(db)

	// Duplicate option code violates the unique index.
	mock.ExpectExec("INSERT INTO stocks").
		WillReturnError(errors.New("UNIQUE constraint failed: stocks.product_option_code"))

	err := repo.InsertStock(db, 7, "PC2026083000000070101", 8, 1, 1)
	assert.ErrorIs(t, err, domain.ErrStockCreateDenied)
}
