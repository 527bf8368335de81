package model

import (
	"time"
)

type Product struct {
	ID          uint64  `gorm:"primaryKey"`
	CategoryID  uint64  `gorm:"not null;index:idx_category_active" json:"category_id"`
	BrandID     *uint64 `gorm:"index" json:"brand_id,omitempty"`
	Name        string  `gorm:"type:varchar(255);not null" json:"name"`
	Description string  `json:"description"`

	// 价格以最小货币单位（分）存储，价格带过滤必须走精确整数运算
	PriceCents int64  `gorm:"not null" json:"price_cents"`
	Currency   string `gorm:"type:char(3);not null;default:'CNY'" json:"currency"`

	// 行为计数，由活动上报与订单消费方维护，只增不减
	ViewCount     int64 `gorm:"not null;default:0" json:"view_count"`
	CartCount     int64 `gorm:"not null;default:0" json:"cart_count"`
	FavoriteCount int64 `gorm:"not null;default:0" json:"favorite_count"`
	OrderCount    int64 `gorm:"not null;default:0" json:"order_count"`

	// PopularityScore 是计分任务落库的快照，读路径容忍过期
	PopularityScore float64    `gorm:"not null;default:0;index:idx_popularity" json:"popularity_score"`
	ScoreUpdatedAt  *time.Time `json:"score_updated_at,omitempty"`

	IsActive  bool      `gorm:"type:tinyint(1);not null;default:1;index:idx_category_active" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 关联关系
	Category Category `gorm:"foreignKey:CategoryID;references:ID"`
}

func (Product) TableName() string {
	return "products"
}
