package service

import (
	"Emporium/internal/model"
	"Emporium/internal/pkg/consts"
	"Emporium/internal/pkg/redis"
	"Emporium/internal/pkg/scoring"
	"Emporium/internal/pkg/util"
	"Emporium/internal/repository"
	"context"
	log "log/slog"
	"time"
)

type ActivityService interface {
	// RecordActivity 记录一条行为事件并推进计数与兴趣分，userID 为 0 表示游客
	RecordActivity(ctx context.Context, userID, productID uint64, activityType string) error
}

type activityServiceImpl struct {
	productRepo  repository.ProductRepo
	activityRepo repository.UserActivityRepo
	interestRepo repository.UserInterestRepo
	weights      scoring.Weights
}

func NewActivityService(
	productRepo repository.ProductRepo,
	activityRepo repository.UserActivityRepo,
	interestRepo repository.UserInterestRepo,
	weights scoring.Weights,
) ActivityService {
	return &activityServiceImpl{
		productRepo:  productRepo,
		activityRepo: activityRepo,
		interestRepo: interestRepo,
		weights:      weights,
	}
}

func (s *activityServiceImpl) RecordActivity(ctx context.Context, userID, productID uint64, activityType string) error {
	column, ok := repository.CounterColumn(activityType)
	if !ok {
		return ErrActivityTypeInvalid
	}

	product, err := s.productRepo.GetProduct(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil || !product.IsActive {
		return ErrProductNotFound
	}

	activity := &model.UserActivity{
		ProductID:    productID,
		ActivityType: activityType,
		CreatedAt:    time.Now(),
	}
	if userID > 0 {
		activity.UserID = util.PtrUint64(userID)
	}
	if err = s.activityRepo.CreateActivity(ctx, activity); err != nil {
		return err
	}

	if err = s.productRepo.IncrementCounter(ctx, productID, column); err != nil {
		return err
	}

	// 登录用户按行为权重累加分类兴趣分
	if userID > 0 {
		delta := s.interestDelta(activityType)
		if err = s.interestRepo.UpsertInterest(ctx, userID, product.CategoryID, delta); err != nil {
			log.ErrorContext(ctx, "upsert user interest error", "uid", userID, "err", err)
		}
	}

	// 标脏，让计分任务在下个周期刷新该商品
	if err = redis.SAdd(ctx, consts.ProductDirtyKey, productID); err != nil {
		log.WarnContext(ctx, "mark product dirty error", "pid", productID, "err", err)
	}

	return nil
}

func (s *activityServiceImpl) interestDelta(activityType string) float64 {
	switch activityType {
	case model.ActivityCartAdd:
		return s.weights.CartAdd
	case model.ActivityFavorite:
		return s.weights.Favorite
	case model.ActivityOrder:
		return s.weights.Order
	default:
		return s.weights.View
	}
}
