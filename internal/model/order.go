package model

import "time"

// 订单状态，推荐侧只关心已确认的订单
const (
	OrderStatusPending   = 0
	OrderStatusConfirmed = 1
	OrderStatusCancelled = 2
)

// Order 由交易侧写入，本服务只读
type Order struct {
	ID         uint64    `gorm:"primaryKey"`
	UserID     uint64    `gorm:"not null;index" json:"user_id"`
	Status     int8      `gorm:"not null;default:0" json:"status"`
	TotalCents int64     `gorm:"not null" json:"total_cents"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Order) TableName() string {
	return "orders"
}

type OrderItem struct {
	ID         uint64 `gorm:"primaryKey"`
	OrderID    uint64 `gorm:"not null;index" json:"order_id"`
	ProductID  uint64 `gorm:"not null;index" json:"product_id"`
	Quantity   int    `gorm:"not null;default:1" json:"quantity"`
	PriceCents int64  `gorm:"not null" json:"price_cents"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
