package model

import "time"

// 活动类型，order 由订单消费端写入，其余来自前台上报
const (
	ActivityView     = "view"
	ActivityCartAdd  = "cart"
	ActivityFavorite = "favorite"
	ActivityOrder    = "order"
)

// UserActivity 行为事件，追加写入，本服务不更新不删除
type UserActivity struct {
	ID           uint64    `gorm:"primaryKey"`
	UserID       *uint64   `gorm:"index" json:"user_id,omitempty"` // 游客为 NULL
	ProductID    uint64    `gorm:"not null;index:idx_product_created" json:"product_id"`
	ActivityType string    `gorm:"type:varchar(16);not null" json:"activity_type"`
	CreatedAt    time.Time `gorm:"index:idx_product_created" json:"created_at"`
}

func (UserActivity) TableName() string {
	return "user_activities"
}
