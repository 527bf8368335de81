package repository

import (
	"Emporium/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserInterestRepo interface {
	ListUserInterests(ctx context.Context, userID uint64) ([]*model.UserInterest, error)
	UpsertInterest(ctx context.Context, userID, categoryID uint64, delta float64) error
}

type userInterestRepoImpl struct {
	db *gorm.DB
}

func NewUserInterestRepository(db *gorm.DB) UserInterestRepo {
	return &userInterestRepoImpl{db: db}
}

// ListUserInterests 按兴趣分降序返回用户的全部分类兴趣
func (r *userInterestRepoImpl) ListUserInterests(ctx context.Context, userID uint64) ([]*model.UserInterest, error) {
	interests := make([]*model.UserInterest, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("interest_score DESC").
		Find(&interests).Error
	if err != nil {
		return nil, err
	}
	return interests, nil
}

// UpsertInterest 兴趣分累加，(user_id, category_id) 冲突时在原值上叠加
func (r *userInterestRepoImpl) UpsertInterest(ctx context.Context, userID, categoryID uint64, delta float64) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "category_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"interest_score": gorm.Expr("interest_score + ?", delta),
			"updated_at":     time.Now(),
		}),
	}).Create(&model.UserInterest{
		UserID:        userID,
		CategoryID:    categoryID,
		InterestScore: delta,
		UpdatedAt:     time.Now(),
	}).Error
}
