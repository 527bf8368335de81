package repository

import (
	"Emporium/internal/model"
	"context"

	"gorm.io/gorm"
)

type OrderRepo interface {
	ListPurchasedProductIDs(ctx context.Context, userID uint64) ([]uint64, error)
}

type orderRepoImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepo {
	return &orderRepoImpl{db: db}
}

// ListPurchasedProductIDs 用户已确认订单中出现过的商品 ID 去重集合
func (r *orderRepoImpl) ListPurchasedProductIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.db.WithContext(ctx).
		Model(&model.OrderItem{}).
		Distinct("order_items.product_id").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.user_id = ? AND orders.status = ?", userID, model.OrderStatusConfirmed).
		Pluck("order_items.product_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
