package repos

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"modemarket/internal/domain"
)

type DestinationRepo struct{ db *sqlx.DB }

func NewDestinationRepo(db *sqlx.DB) *DestinationRepo { return &DestinationRepo{db: db} }

// NewDestination carries the column values for a destination insert.
type NewDestination struct {
	AccountID       int64
	Recipient       string
	Phone           string
	Address1        string
	Address2        string
	PostNumber      string
	DefaultLocation bool
}

func (r *DestinationRepo) Get(destinationID int64) (domain.Destination, error) {
	var d domain.Destination
	err := r.db.Get(&d, `
	  SELECT id, account_id, recipient, phone, address1, address2, post_number,
	         default_location, is_deleted, created_at, COALESCE(updated_at,'') AS updated_at
	  FROM destinations
	  WHERE id = ? AND is_deleted = 0
	`, destinationID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Destination{}, domain.ErrDestinationDoesNotExist
	}
	return d, err
}

func (r *DestinationRepo) ListByAccount(accountID int64) ([]domain.Destination, error) {
	out := []domain.Destination{}
	err := r.db.Select(&out, `
	  SELECT id, account_id, recipient, phone, address1, address2, post_number,
	         default_location, is_deleted, created_at, COALESCE(updated_at,'') AS updated_at
	  FROM destinations
	  WHERE account_id = ? AND is_deleted = 0
	  ORDER BY default_location DESC, id
	`, accountID)
	return out, err
}

func (r *DestinationRepo) CountByAccount(ext sqlx.Ext, accountID int64) (int, error) {
	var n int
	err := sqlx.Get(ext, &n, `
	  SELECT COUNT(*) FROM destinations
	  WHERE account_id = ? AND is_deleted = 0
	`, accountID)
	return n, err
}

// ClearDefault unsets the default flag on every destination of the
// account. Zero rows affected is fine here: there may be no default yet.
func (r *DestinationRepo) ClearDefault(ext sqlx.Ext, accountID int64) error {
	_, err := ext.Exec(`
	  UPDATE destinations SET default_location = 0, updated_at = CURRENT_TIMESTAMP
	  WHERE account_id = ? AND is_deleted = 0 AND default_location = 1
	`, accountID)
	return err
}

func (r *DestinationRepo) Insert(ext sqlx.Ext, d NewDestination) (int64, error) {
	res, err := ext.Exec(`
	  INSERT INTO destinations(account_id, recipient, phone, address1, address2,
	                           post_number, default_location)
	  VALUES (?,?,?,?,?,?,?)
	`, d.AccountID, d.Recipient, d.Phone, d.Address1, d.Address2, d.PostNumber, d.DefaultLocation)
	if err != nil {
		return 0, domain.ErrDestinationCreateDenied
	}
	id, err := res.LastInsertId()
	if err != nil || id == 0 {
		return 0, domain.ErrDestinationCreateDenied
	}
	return id, nil
}

// Update rewrites the row's address fields. Zero rows affected means the
// destination is missing, soft-deleted, or owned by someone else.
func (r *DestinationRepo) Update(ext sqlx.Ext, destinationID, accountID int64, d NewDestination) error {
	res, err := ext.Exec(`
	  UPDATE destinations
	  SET recipient = ?, phone = ?, address1 = ?, address2 = ?, post_number = ?,
	      default_location = ?, updated_at = CURRENT_TIMESTAMP
	  WHERE id = ? AND account_id = ? AND is_deleted = 0
	`, d.Recipient, d.Phone, d.Address1, d.Address2, d.PostNumber, d.DefaultLocation,
		destinationID, accountID)
	if err != nil {
		return domain.ErrDestinationUpdateDenied
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrDestinationUpdateDenied
	}
	return nil
}

// SoftDelete flags the row deleted rather than removing it.
func (r *DestinationRepo) SoftDelete(ext sqlx.Ext, destinationID, accountID int64) error {
	res, err := ext.Exec(`
	  UPDATE destinations
	  SET is_deleted = 1, default_location = 0, updated_at = CURRENT_TIMESTAMP
	  WHERE id = ? AND account_id = ? AND is_deleted = 0
	`, destinationID, accountID)
	if err != nil {
		return domain.ErrDestinationDeleteDenied
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrDestinationDeleteDenied
	}
	return nil
}
