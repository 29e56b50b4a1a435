package services

import (
	"testing"

	"github.com/HandyAndyTobes/lunch-club-orders-app/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDonationThenUsageBalance(t *testing.T) {
	db := newTestDB(t)
	s := NewFundService(repository.NewFundRepository(db))

	_, err := s.RecordDonation("Margaret", 10.00, "weekly gift")
	require.NoError(t, err)

	_, err = s.RecordUsage("Bob", 4.00, 0, "meal subsidy")
	require.NoError(t, err)

	balance, err := s.GetBalance()
	require.NoError(t, err)
	assert.Equal(t, 6.00, balance.CurrentBalance)
	assert.Equal(t, 10.00, balance.TotalDonations)
	assert.Equal(t, 4.00, balance.TotalUsed)
}

func TestEmptyLedgerBalanceIsZero(t *testing.T) {
	db := newTestDB(t)
	s := NewFundService(repository.NewFundRepository(db))

	balance, err := s.GetBalance()
	require.NoError(t, err)
	assert.Zero(t, balance.CurrentBalance)
	assert.Zero(t, balance.TotalDonations)
	assert.Zero(t, balance.TotalUsed)
}

func TestDonationValidation(t *testing.T) {
	db := newTestDB(t)
	s := NewFundService(repository.NewFundRepository(db))

	_, err := s.RecordDonation("", 10.00, "")
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = s.RecordDonation("Margaret", 0, "")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = s.RecordDonation("Margaret", -5, "")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	items, err := s.ListDonations(10)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestUsageValidation(t *testing.T) {
	db := newTestDB(t)
	s := NewFundService(repository.NewFundRepository(db))

	_, err := s.RecordUsage("", 4.00, 0, "")
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = s.RecordUsage("Bob", 0, 0, "")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	items, err := s.ListUsage(10)
	require.NoError(t, err)
	assert.Empty(t, items)
}
