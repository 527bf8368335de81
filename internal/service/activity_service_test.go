package service

import (
	"Emporium/internal/model"
	"Emporium/internal/pkg/consts"
	"Emporium/internal/pkg/scoring"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestActivityService(productRepo *fakeProductRepo, activityRepo *fakeActivityRepo, interestRepo *fakeInterestRepo) ActivityService {
	return NewActivityService(productRepo, activityRepo, interestRepo, scoring.DefaultWeights())
}

func TestRecordActivityInvalidType(t *testing.T) {
	resetRedis(t)
	svc := newTestActivityService(newFakeProductRepo(activeProduct(1, 1, 1000, 0)), &fakeActivityRepo{}, newFakeInterestRepo())

	err := svc.RecordActivity(context.Background(), 0, 1, "share")
	assert.ErrorIs(t, err, ErrActivityTypeInvalid)
}

func TestRecordActivityProductMissingOrInactive(t *testing.T) {
	resetRedis(t)
	inactive := activeProduct(2, 1, 1000, 0)
	inactive.IsActive = false
	svc := newTestActivityService(newFakeProductRepo(inactive), &fakeActivityRepo{}, newFakeInterestRepo())

	assert.ErrorIs(t, svc.RecordActivity(context.Background(), 0, 404, model.ActivityView), ErrProductNotFound)
	assert.ErrorIs(t, svc.RecordActivity(context.Background(), 0, 2, model.ActivityView), ErrProductNotFound)
}

func TestRecordActivityGuest(t *testing.T) {
	resetRedis(t)
	ctx := context.Background()

	repo := newFakeProductRepo(activeProduct(1, 1, 1000, 0))
	activities := &fakeActivityRepo{}
	interests := newFakeInterestRepo()
	svc := newTestActivityService(repo, activities, interests)

	require.NoError(t, svc.RecordActivity(ctx, 0, 1, model.ActivityView))

	// 游客事件：user_id 为空，计数推进，不写兴趣
	require.Len(t, activities.activities, 1)
	assert.Nil(t, activities.activities[0].UserID)
	assert.Equal(t, int64(1), repo.products[1].ViewCount)
	assert.Empty(t, interests.interests)

	// 商品进入待刷分脏集合
	members, err := testRedis.Members(consts.ProductDirtyKey)
	require.NoError(t, err)
	assert.Contains(t, members, "1")
}

func TestRecordActivityAccumulatesInterest(t *testing.T) {
	resetRedis(t)
	ctx := context.Background()
	userID := uint64(9)

	repo := newFakeProductRepo(activeProduct(1, 7, 1000, 0))
	activities := &fakeActivityRepo{}
	interests := newFakeInterestRepo()
	svc := newTestActivityService(repo, activities, interests)

	require.NoError(t, svc.RecordActivity(ctx, userID, 1, model.ActivityView))
	require.NoError(t, svc.RecordActivity(ctx, userID, 1, model.ActivityCartAdd))
	require.NoError(t, svc.RecordActivity(ctx, userID, 1, model.ActivityFavorite))
	require.NoError(t, svc.RecordActivity(ctx, userID, 1, model.ActivityOrder))

	// 1 + 3 + 5 + 10，按行为权重累加到商品所属分类
	assert.InDelta(t, 19.0, interests.interests[userID][7], 1e-9)

	assert.Equal(t, int64(1), repo.products[1].ViewCount)
	assert.Equal(t, int64(1), repo.products[1].CartCount)
	assert.Equal(t, int64(1), repo.products[1].FavoriteCount)
	assert.Equal(t, int64(1), repo.products[1].OrderCount)

	require.Len(t, activities.activities, 4)
	for _, a := range activities.activities {
		require.NotNil(t, a.UserID)
		assert.Equal(t, userID, *a.UserID)
	}
}
