package services

import (
	"github.com/jmoiron/sqlx"

	"modemarket/internal/domain"
	"modemarket/internal/repos"
)

// MaxDestinations caps how many live destinations an account may keep.
const MaxDestinations = 5

type DestinationService struct {
	DB           *sqlx.DB
	Destinations *repos.DestinationRepo
	Accounts     *repos.AccountRepo
}

func NewDestinationService(db *sqlx.DB, destinations *repos.DestinationRepo, accounts *repos.AccountRepo) *DestinationService {
	return &DestinationService{DB: db, Destinations: destinations, Accounts: accounts}
}

func (s *DestinationService) requireUser(accountID int64) error {
	permission, err := s.Accounts.PermissionTypeID(accountID)
	if err != nil {
		return err
	}
	if permission != domain.PermissionUser {
		return domain.ErrNotAUser
	}
	return nil
}

func (s *DestinationService) Create(d repos.NewDestination) (int64, error) {
	if err := s.requireUser(d.AccountID); err != nil {
		return 0, err
	}

	tx, err := s.DB.Beginx()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	n, err := s.Destinations.CountByAccount(tx, d.AccountID)
	if err != nil {
		return 0, err
	}
	if n >= MaxDestinations {
		return 0, domain.ErrDestinationLimitReached
	}
	// First destination always becomes the default.
	if n == 0 {
		d.DefaultLocation = true
	}
	if d.DefaultLocation {
		if err := s.Destinations.ClearDefault(tx, d.AccountID); err != nil {
			return 0, err
		}
	}

	id, err := s.Destinations.Insert(tx, d)
	if err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, domain.ErrDatabaseClose
	}
	return id, nil
}

func (s *DestinationService) Detail(destinationID int64) (domain.Destination, error) {
	return s.Destinations.Get(destinationID)
}

func (s *DestinationService) ListByAccount(accountID int64) ([]domain.Destination, error) {
	if err := s.requireUser(accountID); err != nil {
		return nil, err
	}
	return s.Destinations.ListByAccount(accountID)
}

func (s *DestinationService) Update(destinationID, accountID int64, d repos.NewDestination) error {
	if err := s.requireUser(accountID); err != nil {
		return err
	}

	tx, err := s.DB.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if d.DefaultLocation {
		if err := s.Destinations.ClearDefault(tx, accountID); err != nil {
			return err
		}
	}
	if err := s.Destinations.Update(tx, destinationID, accountID, d); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return domain.ErrDatabaseClose
	}
	return nil
}

func (s *DestinationService) Delete(destinationID, accountID int64) error {
	if err := s.requireUser(accountID); err != nil {
		return err
	}

	tx, err := s.DB.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if err := s.Destinations.SoftDelete(tx, destinationID, accountID); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return domain.ErrDatabaseClose
	}
	return nil
}
