package repos_test

import (
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"modemarket/internal/domain"
	"modemarket/internal/repos"
)

func TestOrderRepo_DecrementStockSoldOut(t *testing.T) {
	db, mock := mockDB(t)
	repo := repos.NewOrderRepo(db)

	// remain >= quantity matched nothing: the option sold out.
	mock.ExpectExec("UPDATE stocks SET remain").
		WithArgs(2, int64(1), 2).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DecrementStock(db, 1, 2)
	assert.ErrorIs(t, err, domain.ErrProductSoldOut)
}

func TestOrderRepo_DecrementStockMapsDriverError(t *testing.T) {
	db, mock := mockDB(t)
	repo := repos.NewOrderRepo(db)

	mock.ExpectExec("UPDATE stocks SET remain").
		WillReturnError(errors.New("database is locked"))

	err := repo.DecrementStock(db, 1, 2)
	assert.ErrorIs(t, err, domain.ErrStockDecreaseDenied)
}

func TestOrderRepo_ResultNoRows(t *testing.T) {
	db, mock := mockDB(t)
	repo := repos.NewOrderRepo(db)

	mock.ExpectQuery("SELECT order_number, total_price").
		WithArgs(int64(9), int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"order_number", "total_price"}))

	_, err := repo.Result(9, 3)
	assert.ErrorIs(t, err, domain.ErrOrderDoesNotExist)
}
