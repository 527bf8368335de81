package service

import (
	"Emporium/internal/api/dto"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGetProduct(t *testing.T) {
	ctx := context.Background()
	repo := newFakeProductRepo()
	svc := NewProductService(repo)

	err := svc.CreateProduct(ctx, &dto.ProductBaseDTO{
		CategoryID: 3,
		Name:       "mechanical keyboard",
		PriceCents: 39900,
	})
	require.NoError(t, err)

	got, err := svc.GetProduct(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "mechanical keyboard", got.Name)
	assert.Equal(t, int64(39900), got.PriceCents)
	assert.True(t, got.IsActive)
}

func TestGetProductNotFound(t *testing.T) {
	svc := NewProductService(newFakeProductRepo())
	_, err := svc.GetProduct(context.Background(), 404)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestGetProductInactiveHidden(t *testing.T) {
	inactive := activeProduct(1, 1, 1000, 0)
	inactive.IsActive = false
	svc := NewProductService(newFakeProductRepo(inactive))

	_, err := svc.GetProduct(context.Background(), 1)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestListProductsFilters(t *testing.T) {
	ctx := context.Background()
	repo := newFakeProductRepo(
		activeProduct(1, 1, 500, 10),
		activeProduct(2, 1, 1500, 20),
		activeProduct(3, 2, 1500, 30),
	)
	svc := NewProductService(repo)

	categoryID := uint64(1)
	minCents := int64(1000)
	page, err := svc.ListProducts(ctx, &dto.ProductListDTO{
		CategoryID: &categoryID,
		MinCents:   &minCents,
		Page:       1,
		PageSize:   20,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	require.Len(t, page.List, 1)
	assert.Equal(t, uint64(2), page.List[0].ID)
}

func TestDeleteProductDeactivates(t *testing.T) {
	ctx := context.Background()
	repo := newFakeProductRepo(activeProduct(1, 1, 1000, 0))
	svc := NewProductService(repo)

	require.NoError(t, svc.DeleteProduct(ctx, 1))
	assert.False(t, repo.products[1].IsActive)

	// 下架是幂等语义的软删除，记录仍在
	_, err := svc.GetProduct(ctx, 1)
	assert.ErrorIs(t, err, ErrProductNotFound)
}
