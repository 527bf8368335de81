package model

import "time"

type Category struct {
	ID        uint64    `gorm:"primaryKey"`
	Name      string    `gorm:"type:varchar(64);not null;uniqueIndex" json:"name"`
	ParentID  *uint64   `json:"parent_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (Category) TableName() string {
	return "categories"
}
