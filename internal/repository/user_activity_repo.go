package repository

import (
	"Emporium/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

// ProductActivityCount 窗口内单个商品的活动次数
type ProductActivityCount struct {
	ProductID uint64
	Total     int64
}

type UserActivityRepo interface {
	CreateActivity(ctx context.Context, activity *model.UserActivity) error
	CountByProductSince(ctx context.Context, since time.Time, limit int) ([]ProductActivityCount, error)
}

type userActivityRepoImpl struct {
	db *gorm.DB
}

func NewUserActivityRepository(db *gorm.DB) UserActivityRepo {
	return &userActivityRepoImpl{db: db}
}

func (r *userActivityRepoImpl) CreateActivity(ctx context.Context, activity *model.UserActivity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

// CountByProductSince 统计窗口内按商品分组的活动次数，次数降序
func (r *userActivityRepoImpl) CountByProductSince(ctx context.Context, since time.Time, limit int) ([]ProductActivityCount, error) {
	counts := make([]ProductActivityCount, 0, limit)
	err := r.db.WithContext(ctx).
		Model(&model.UserActivity{}).
		Select("product_id", "COUNT(*) AS total").
		Where("created_at >= ?", since).
		Group("product_id").
		Order("total DESC").
		Limit(limit).
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}
