package kafka

// 订单事件状态
const (
	OrderEventConfirmed = "confirmed"
	OrderEventCancelled = "cancelled"
)

// OrderItemMessage 订单事件中的单个条目
type OrderItemMessage struct {
	ProductID uint64 `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// OrderEventMessage 交易侧推送到 Kafka 的订单事件结构
type OrderEventMessage struct {
	OrderID   uint64             `json:"order_id"`
	UserID    uint64             `json:"user_id"`
	Status    string             `json:"status"`
	Items     []OrderItemMessage `json:"items"`
	Timestamp int64              `json:"timestamp"`
}
