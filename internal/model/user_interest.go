package model

import "time"

// UserInterest 用户对单个分类的兴趣分，随行为累加
type UserInterest struct {
	ID            uint64    `gorm:"primaryKey"`
	UserID        uint64    `gorm:"not null;index:idx_user_category,unique" json:"user_id"`
	CategoryID    uint64    `gorm:"not null;index:idx_user_category,unique" json:"category_id"`
	InterestScore float64   `gorm:"not null;default:0" json:"interest_score"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (UserInterest) TableName() string {
	return "user_interests"
}
