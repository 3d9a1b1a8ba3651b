package services_test

import (
	"fmt"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modemarket/internal/domain"
	"modemarket/internal/repos"
	"modemarket/internal/services"
)

func newDestinationService(db *sqlx.DB) *services.DestinationService {
	return services.NewDestinationService(db, repos.NewDestinationRepo(db), repos.NewAccountRepo(db))
}

func destination(accountID int64, recipient string, isDefault bool) repos.NewDestination {
	return repos.NewDestination{
		AccountID:       accountID,
		Recipient:       recipient,
		Phone:           "01012341234",
		Address1:        "12 Teheran-ro",
		Address2:        "3F",
		PostNumber:      "06236",
		DefaultLocation: isDefault,
	}
}

func TestDestinationService_FirstBecomesDefault(t *testing.T) {
	db := memdb(t)
	svc := newDestinationService(db)

	firstID, err := svc.Create(destination(3, "Suhee", false))
	require.NoError(t, err)

	d, err := svc.Detail(firstID)
	require.NoError(t, err)
	assert.True(t, d.DefaultLocation, "first destination should be forced default")

	// A new default displaces the old one.
	secondID, err := svc.Create(destination(3, "Office", true))
	require.NoError(t, err)

	first, err := svc.Detail(firstID)
	require.NoError(t, err)
	second, err := svc.Detail(secondID)
	require.NoError(t, err)
	assert.False(t, first.DefaultLocation)
	assert.True(t, second.DefaultLocation)
}

func TestDestinationService_LimitReached(t *testing.T) {
	db := memdb(t)
	svc := newDestinationService(db)

	for i := 0; i < services.MaxDestinations; i++ {
		_, err := svc.Create(destination(3, fmt.Sprintf("Place %d", i), false))
		require.NoError(t, err)
	}
	_, err := svc.Create(destination(3, "One too many", false))
	assert.ErrorIs(t, err, domain.ErrDestinationLimitReached)

	// Soft-deleting one frees a slot.
	list, err := svc.ListByAccount(3)
	require.NoError(t, err)
	require.Len(t, list, services.MaxDestinations)
	require.NoError(t, svc.Delete(list[len(list)-1].ID, 3))

	_, err = svc.Create(destination(3, "Fits again", false))
	assert.NoError(t, err)
}

func TestDestinationService_NotAUser(t *testing.T) {
	db := memdb(t)
	svc := newDestinationService(db)

	_, err := svc.Create(destination(2, "Seller", false)) // seller account
	assert.ErrorIs(t, err, domain.ErrNotAUser)

	_, err = svc.Create(destination(999, "Ghost", false))
	assert.ErrorIs(t, err, domain.ErrAccountDoesNotExist)
}

func TestDestinationService_UpdateAndDelete(t *testing.T) {
	db := memdb(t)
	svc := newDestinationService(db)

	id, err := svc.Create(destination(3, "Suhee", false))
	require.NoError(t, err)

	updated := destination(3, "Suhee Go", false)
	updated.Address1 = "45 Gangnam-daero"
	require.NoError(t, svc.Update(id, 3, updated))

	d, err := svc.Detail(id)
	require.NoError(t, err)
	assert.Equal(t, "Suhee Go", d.Recipient)
	assert.Equal(t, "45 Gangnam-daero", d.Address1)

	// Updating a row that isn't yours, or doesn't exist, is denied.
	assert.ErrorIs(t, svc.Update(id, 4, updated), domain.ErrDestinationUpdateDenied)
	assert.ErrorIs(t, svc.Update(9999, 3, updated), domain.ErrDestinationUpdateDenied)

	require.NoError(t, svc.Delete(id, 3))
	_, err = svc.Detail(id)
	assert.ErrorIs(t, err, domain.ErrDestinationDoesNotExist)

	// Double delete hits the soft-deleted row.
	assert.ErrorIs(t, svc.Delete(id, 3), domain.ErrDestinationDeleteDenied)

	list, err := svc.ListByAccount(3)
	require.NoError(t, err)
	assert.Empty(t, list)
}
