package store

import (
	"context"
	"math"

	perrors "github.com/abgdnv/catalog/internal/errors"
	"github.com/abgdnv/catalog/internal/store/db"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// productStoreSuite holds the behaviour every ProductStore implementation must share.
// Concrete suites embed it and provide the store plus per-test isolation.
type productStoreSuite struct {
	suite.Suite
	ctx   context.Context
	store ProductStore
}

func ptr[T any](v T) *T {
	return &v
}

// createTestProduct is a helper function to create a product for testing purposes.
func (s *productStoreSuite) createTestProduct(name string, price string, available bool) *db.Product {
	s.T().Helper()
	product, err := s.store.Create(s.ctx, NewProduct{
		Name:      name,
		Price:     decimal.RequireFromString(price),
		Available: available,
	})
	require.NoError(s.T(), err, "createTestProduct helper failed to create product")
	return product
}

func (s *productStoreSuite) TestCreateAndFindByID() {
	toCreate := NewProduct{
		Name:        "Mechanical keyboard",
		Description: ptr("Tenkeyless, brown switches"),
		Price:       decimal.RequireFromString("129.9900"),
		Available:   true,
	}
	created, err := s.store.Create(s.ctx, toCreate)
	require.NoError(s.T(), err)

	require.NotZero(s.T(), created.ID, "Created product ID should not be zero")
	assert.Equal(s.T(), toCreate.Name, created.Name)
	assert.Equal(s.T(), *toCreate.Description, *created.Description)
	assert.True(s.T(), toCreate.Price.Equal(created.Price), "price %s != %s", toCreate.Price, created.Price)
	assert.True(s.T(), created.Available)

	fetched, err := s.store.FindByID(s.ctx, created.ID, AvailableOnly())
	require.NoError(s.T(), err)
	assert.Equal(s.T(), created.ID, fetched.ID)
	assert.Equal(s.T(), created.Name, fetched.Name)
	assert.True(s.T(), created.Price.Equal(fetched.Price))
}

func (s *productStoreSuite) TestCreate_AssignsIncreasingIDs() {
	first := s.createTestProduct("First", "1", true)
	second := s.createTestProduct("Second", "2", true)
	assert.Greater(s.T(), second.ID, first.ID)
}

func (s *productStoreSuite) TestFindByID_NotFound() {
	_, err := s.store.FindByID(s.ctx, 987654, AnyProduct())
	require.ErrorIs(s.T(), err, perrors.ErrProductNotFound)
}

func (s *productStoreSuite) TestFindByID_FilterHidesUnavailable() {
	hidden := s.createTestProduct("Retired mouse", "15", false)

	_, err := s.store.FindByID(s.ctx, hidden.ID, AvailableOnly())
	require.ErrorIs(s.T(), err, perrors.ErrProductNotFound)

	found, err := s.store.FindByID(s.ctx, hidden.ID, AnyProduct())
	require.NoError(s.T(), err)
	assert.False(s.T(), found.Available)
}

func (s *productStoreSuite) TestFindAllAndCount() {
	a := s.createTestProduct("Product A", "10", true)
	s.createTestProduct("Product B", "20", false)
	c := s.createTestProduct("Product C", "30", true)
	d := s.createTestProduct("Product D", "40", true)

	total, err := s.store.Count(s.ctx, AvailableOnly())
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(3), total)

	all, err := s.store.Count(s.ctx, AnyProduct())
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(4), all)

	page1, err := s.store.FindAll(s.ctx, AvailableOnly(), 0, 2)
	require.NoError(s.T(), err)
	require.Len(s.T(), page1, 2)
	assert.Equal(s.T(), a.ID, page1[0].ID)
	assert.Equal(s.T(), c.ID, page1[1].ID)

	page2, err := s.store.FindAll(s.ctx, AvailableOnly(), 2, 2)
	require.NoError(s.T(), err)
	require.Len(s.T(), page2, 1)
	assert.Equal(s.T(), d.ID, page2[0].ID)

	page3, err := s.store.FindAll(s.ctx, AvailableOnly(), 4, 2)
	require.NoError(s.T(), err)
	assert.Empty(s.T(), page3)
}

func (s *productStoreSuite) TestFindAll_OffsetBeyondInt32() {
	s.createTestProduct("Product A", "10", true)

	page, err := s.store.FindAll(s.ctx, AvailableOnly(), int64(math.MaxInt32-1)*10, 10)
	require.NoError(s.T(), err)
	assert.Empty(s.T(), page)
}

func (s *productStoreSuite) TestFindByIDs_IgnoresAvailability() {
	a := s.createTestProduct("Product A", "10", true)
	b := s.createTestProduct("Product B", "20", false)

	found, err := s.store.FindByIDs(s.ctx, []int64{b.ID, a.ID, 999999})
	require.NoError(s.T(), err)
	require.Len(s.T(), found, 2)
	assert.Equal(s.T(), a.ID, found[0].ID)
	assert.Equal(s.T(), b.ID, found[1].ID)

	none, err := s.store.FindByIDs(s.ctx, []int64{})
	require.NoError(s.T(), err)
	assert.Empty(s.T(), none)
}

func (s *productStoreSuite) TestUpdate_PatchesOnlyGivenFields() {
	created, err := s.store.Create(s.ctx, NewProduct{
		Name:        "Desk lamp",
		Description: ptr("Warm white LED lamp"),
		Price:       decimal.RequireFromString("45.5"),
		Available:   true,
	})
	require.NoError(s.T(), err)

	newPrice := decimal.RequireFromString("39.1234")
	updated, err := s.store.Update(s.ctx, created.ID, Patch{Price: &newPrice}, AvailableOnly())
	require.NoError(s.T(), err)

	assert.Equal(s.T(), created.ID, updated.ID)
	assert.Equal(s.T(), "Desk lamp", updated.Name)
	assert.Equal(s.T(), "Warm white LED lamp", *updated.Description)
	assert.True(s.T(), newPrice.Equal(updated.Price), "price %s", updated.Price)
	assert.True(s.T(), updated.Available)
}

func (s *productStoreSuite) TestUpdate_FilterRejectsUnavailable() {
	hidden := s.createTestProduct("Hidden", "5", false)

	_, err := s.store.Update(s.ctx, hidden.ID, Patch{Name: ptr("Renamed")}, AvailableOnly())
	require.ErrorIs(s.T(), err, perrors.ErrProductNotFound)

	unchanged, err := s.store.FindByID(s.ctx, hidden.ID, AnyProduct())
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Hidden", unchanged.Name)
}

func (s *productStoreSuite) TestUpdate_NotFound() {
	_, err := s.store.Update(s.ctx, 424242, Patch{Name: ptr("Nothing")}, AnyProduct())
	require.ErrorIs(s.T(), err, perrors.ErrProductNotFound)
}

func (s *productStoreSuite) TestDelete() {
	created := s.createTestProduct("Monitor arm", "80", false)

	deleted, err := s.store.Delete(s.ctx, created.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), created.ID, deleted.ID)
	assert.Equal(s.T(), created.Name, deleted.Name)

	_, err = s.store.FindByID(s.ctx, created.ID, AnyProduct())
	require.ErrorIs(s.T(), err, perrors.ErrProductNotFound)

	_, err = s.store.Delete(s.ctx, created.ID)
	require.ErrorIs(s.T(), err, perrors.ErrProductNotFound)
}
