package repository

import (
	"Emporium/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// ProductQuery 商品列表过滤条件
type ProductQuery struct {
	CategoryID *uint64
	MinCents   *int64
	MaxCents   *int64
	Page       int
	PageSize   int
}

// 计数列白名单，防止拼接非法列名
var counterColumns = map[string]string{
	model.ActivityView:     "view_count",
	model.ActivityCartAdd:  "cart_count",
	model.ActivityFavorite: "favorite_count",
	model.ActivityOrder:    "order_count",
}

// CounterColumn 返回活动类型对应的计数列
func CounterColumn(activityType string) (string, bool) {
	col, ok := counterColumns[activityType]
	return col, ok
}

type ProductRepo interface {
	CreateProduct(ctx context.Context, product *model.Product) error
	GetProduct(ctx context.Context, id uint64) (*model.Product, error)
	GetProductByIds(ctx context.Context, ids []uint64) ([]*model.Product, error)
	ListProducts(ctx context.Context, q ProductQuery) ([]*model.Product, int64, error)
	ListActiveIDs(ctx context.Context) ([]uint64, error)
	ListTopByPopularity(ctx context.Context, limit int) ([]*model.Product, error)
	ListSimilar(ctx context.Context, categoryID, excludeID uint64, minCents, maxCents int64, limit int) ([]*model.Product, error)
	ListByCategories(ctx context.Context, categoryIDs []uint64, excludeIDs []uint64, limit int) ([]*model.Product, error)
	UpdateProduct(ctx context.Context, product *model.Product) error
	UpdatePopularity(ctx context.Context, id uint64, score float64, at time.Time) error
	IncrementCounter(ctx context.Context, id uint64, column string) error
	DeactivateProduct(ctx context.Context, id uint64) error
}

type productRepoImpl struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepo {
	return &productRepoImpl{db: db}
}

func (r *productRepoImpl) CreateProduct(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepoImpl) GetProduct(ctx context.Context, id uint64) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepoImpl) GetProductByIds(ctx context.Context, ids []uint64) ([]*model.Product, error) {
	products := make([]*model.Product, 0, len(ids))
	if len(ids) == 0 {
		return products, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepoImpl) ListProducts(ctx context.Context, q ProductQuery) ([]*model.Product, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Product{}).Where("is_active = ?", true)
	if q.CategoryID != nil {
		query = query.Where("category_id = ?", *q.CategoryID)
	}
	if q.MinCents != nil {
		query = query.Where("price_cents >= ?", *q.MinCents)
	}
	if q.MaxCents != nil {
		query = query.Where("price_cents <= ?", *q.MaxCents)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	products := make([]*model.Product, 0, q.PageSize)
	err := query.
		Order("popularity_score DESC").
		Offset((q.Page - 1) * q.PageSize).
		Limit(q.PageSize).
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *productRepoImpl) ListActiveIDs(ctx context.Context) ([]uint64, error) {
	var ids []uint64
	err := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("is_active = ?", true).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *productRepoImpl) ListTopByPopularity(ctx context.Context, limit int) ([]*model.Product, error) {
	products := make([]*model.Product, 0, limit)
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("popularity_score DESC").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// ListSimilar 同分类价格带内按热度分排序，排除锚点商品自身
func (r *productRepoImpl) ListSimilar(ctx context.Context, categoryID, excludeID uint64, minCents, maxCents int64, limit int) ([]*model.Product, error) {
	products := make([]*model.Product, 0, limit)
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("category_id = ?", categoryID).
		Where("id <> ?", excludeID).
		Where("price_cents BETWEEN ? AND ?", minCents, maxCents).
		Order("popularity_score DESC").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// ListByCategories 兴趣分类下的候选池，排除已购买商品
func (r *productRepoImpl) ListByCategories(ctx context.Context, categoryIDs []uint64, excludeIDs []uint64, limit int) ([]*model.Product, error) {
	products := make([]*model.Product, 0, limit)
	if len(categoryIDs) == 0 {
		return products, nil
	}
	query := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("category_id IN ?", categoryIDs)
	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}
	err := query.Limit(limit).Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepoImpl) UpdateProduct(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Model(&model.Product{ID: product.ID}).Updates(product).Error
}

// UpdatePopularity 单行幂等更新，允许并发计分任务重叠执行
func (r *productRepoImpl) UpdatePopularity(ctx context.Context, id uint64, score float64, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"popularity_score": score,
			"score_updated_at": at,
		}).Error
}

func (r *productRepoImpl) IncrementCounter(ctx context.Context, id uint64, column string) error {
	return r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + 1")).Error
}

func (r *productRepoImpl) DeactivateProduct(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}
