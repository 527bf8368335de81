package dto

// ActivityDTO 行为上报。order 类型只能由订单消费端写入，不开放给前台。
type ActivityDTO struct {
	ProductID uint64 `json:"product_id" binding:"required"`
	Type      string `json:"type" binding:"required,oneof=view cart favorite"`
}
