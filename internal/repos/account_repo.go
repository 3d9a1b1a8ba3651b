package repos

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"modemarket/internal/domain"
)

type AccountRepo struct{ db *sqlx.DB }

func NewAccountRepo(db *sqlx.DB) *AccountRepo { return &AccountRepo{db: db} }

func (r *AccountRepo) ByUsername(username string) (domain.Account, error) {
	var a domain.Account
	err := r.db.Get(&a, `
	  SELECT id, username, password_hash, permission_type_id, is_deleted
	  FROM accounts
	  WHERE username = ? AND is_deleted = 0
	`, username)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Account{}, domain.ErrAccountDoesNotExist
	}
	return a, err
}

// PermissionTypeID returns the permission type of an account, raising
// the account-does-not-exist error when no row is found.
func (r *AccountRepo) PermissionTypeID(accountID int64) (int, error) {
	var permission int
	err := r.db.Get(&permission, `
	  SELECT permission_type_id FROM accounts
	  WHERE id = ? AND is_deleted = 0
	`, accountID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, domain.ErrAccountDoesNotExist
	}
	return permission, err
}

// SenderInfo returns the customer contact for an account. A missing row
// yields empty-string fields rather than an error.
func (r *AccountRepo) SenderInfo(accountID int64) (domain.CustomerInfo, error) {
	var info domain.CustomerInfo
	err := r.db.Get(&info, `
	  SELECT account_id, name, phone, email
	  FROM customer_information
	  WHERE account_id = ?
	`, accountID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.CustomerInfo{AccountID: accountID}, nil
	}
	return info, err
}
