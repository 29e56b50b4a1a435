package services

import (
	"testing"

	"github.com/HandyAndyTobes/lunch-club-orders-app/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddDessert(t *testing.T) {
	db := newTestDB(t)
	s := NewInventoryService(repository.NewDessertRepository(db))

	d, err := s.AddDessert("Pie", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, d.StartingStock)
	assert.Equal(t, 5, d.RemainingStock)
	assert.True(t, d.Active)
}

func TestAddDessertValidation(t *testing.T) {
	db := newTestDB(t)
	s := NewInventoryService(repository.NewDessertRepository(db))

	_, err := s.AddDessert("", 5)
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = s.AddDessert("Pie", 0)
	assert.ErrorIs(t, err, ErrInvalidStock)
}

func TestAddDessertRejectsDuplicateName(t *testing.T) {
	db := newTestDB(t)
	s := NewInventoryService(repository.NewDessertRepository(db))

	_, err := s.AddDessert("Pie", 5)
	require.NoError(t, err)

	_, err = s.AddDessert("Pie", 3)
	assert.ErrorIs(t, err, ErrDuplicateDessert)

	items, err := s.List()
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestDeletedDessertNameCanBeReused(t *testing.T) {
	db := newTestDB(t)
	s := NewInventoryService(repository.NewDessertRepository(db))

	d, err := s.AddDessert("Pie", 5)
	require.NoError(t, err)
	require.NoError(t, s.DeleteDessert(d.ID))

	// deleting a dessert one week and re-adding it the next must work
	readded, err := s.AddDessert("Pie", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, readded.StartingStock)
	assert.Equal(t, 3, readded.RemainingStock)

	items, err := s.List()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, readded.ID, items[0].ID)
}

func TestUpdateDessertAllowsAdminOverride(t *testing.T) {
	db := newTestDB(t)
	s := NewInventoryService(repository.NewDessertRepository(db))

	d, err := s.AddDessert("Pie", 5)
	require.NoError(t, err)

	// admin may push remaining above starting; no bounds are enforced
	updated, err := s.UpdateDessert(d.ID, map[string]any{"remainingStock": 9})
	require.NoError(t, err)
	assert.Equal(t, 9, updated.RemainingStock)
	assert.Equal(t, 5, updated.StartingStock)
}

func TestUpdateDessertIgnoresUnknownFields(t *testing.T) {
	db := newTestDB(t)
	s := NewInventoryService(repository.NewDessertRepository(db))

	d, err := s.AddDessert("Pie", 5)
	require.NoError(t, err)

	updated, err := s.UpdateDessert(d.ID, map[string]any{"id": 999, "bogus": "x"})
	require.NoError(t, err)
	assert.Equal(t, d.ID, updated.ID)
}

func TestResetAllStock(t *testing.T) {
	db := newTestDB(t)
	s := NewInventoryService(repository.NewDessertRepository(db))

	pie, err := s.AddDessert("Pie", 5)
	require.NoError(t, err)
	cake, err := s.AddDessert("Cake", 3)
	require.NoError(t, err)

	_, err = s.UpdateDessert(pie.ID, map[string]any{"remainingStock": 0})
	require.NoError(t, err)
	_, err = s.UpdateDessert(cake.ID, map[string]any{"remainingStock": 1})
	require.NoError(t, err)

	require.NoError(t, s.ResetAllStock())

	items, err := s.List()
	require.NoError(t, err)
	for _, d := range items {
		assert.Equal(t, d.StartingStock, d.RemainingStock, d.Name)
	}
}
