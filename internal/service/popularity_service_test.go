package service

import (
	"Emporium/internal/model"
	"Emporium/internal/pkg/scoring"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshProduct(t *testing.T) {
	ctx := context.Background()

	old := activeProduct(1, 1, 1000, 0)
	old.ViewCount = 10
	old.CartCount = 2
	old.FavoriteCount = 1
	old.OrderCount = 3 // 10*1 + 2*3 + 1*5 + 3*10 = 51，过了新品窗口无加成

	fresh := activeProduct(2, 1, 1000, 0)
	fresh.CreatedAt = time.Now().AddDate(0, 0, -1)
	fresh.ViewCount = 10 // 窗口内 ×1.5

	repo := newFakeProductRepo(old, fresh)
	svc := NewPopularityService(repo, scoring.DefaultWeights(), 0)

	require.NoError(t, svc.RefreshProduct(ctx, 1))
	assert.InDelta(t, 51.0, repo.products[1].PopularityScore, 1e-9)
	require.NotNil(t, repo.products[1].ScoreUpdatedAt)

	require.NoError(t, svc.RefreshProduct(ctx, 2))
	assert.InDelta(t, 15.0, repo.products[2].PopularityScore, 1e-9)
}

func TestRefreshProductMissing(t *testing.T) {
	svc := NewPopularityService(newFakeProductRepo(), scoring.DefaultWeights(), 0)
	assert.NoError(t, svc.RefreshProduct(context.Background(), 404))
}

func TestRefreshAll(t *testing.T) {
	ctx := context.Background()

	products := make([]*model.Product, 0, 20)
	for id := uint64(1); id <= 20; id++ {
		p := activeProduct(id, 1, 1000, 0)
		p.ViewCount = int64(id)
		products = append(products, p)
	}
	inactive := activeProduct(99, 1, 1000, 0)
	inactive.IsActive = false
	inactive.ViewCount = 100
	products = append(products, inactive)

	repo := newFakeProductRepo(products...)
	svc := NewPopularityService(repo, scoring.DefaultWeights(), 4)
	require.NoError(t, svc.RefreshAll(ctx))

	for id := uint64(1); id <= 20; id++ {
		assert.InDelta(t, float64(id), repo.products[id].PopularityScore, 1e-9, "product %d", id)
	}
	// 下架商品不在批次里
	assert.Zero(t, repo.products[99].PopularityScore)
}
