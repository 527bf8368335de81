package kafka

import (
	"Emporium/internal/model"
	"Emporium/internal/service"
	"context"
	"errors"
	log "log/slog"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

// OrdersHandler 消费交易侧的订单事件，把确认单转化为 order 行为信号
type OrdersHandler struct {
	activitySvc service.ActivityService
}

func NewOrdersHandler(activitySvc service.ActivityService) *OrdersHandler {
	return &OrdersHandler{
		activitySvc: activitySvc,
	}
}

func (s *OrdersHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("order event consumer setup")
	return nil
}

func (s *OrdersHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("order event consumer cleanup")
	return nil
}

func (s *OrdersHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-order consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-order process batch error", "err", err)
		return err
	}
	return nil
}

func (s *OrdersHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	var event OrderEventMessage
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("unmarshal order event error", "err", err)
		// 消息体损坏重试无意义，直接丢弃
		return nil
	}

	// 订单确认是最强的行为信号，取消与其他状态不入计分
	if event.Status != OrderEventConfirmed {
		return nil
	}
	if len(event.Items) == 0 {
		return nil
	}

	for _, item := range event.Items {
		err := s.activitySvc.RecordActivity(ctx, event.UserID, item.ProductID, model.ActivityOrder)
		if err != nil {
			// 商品同期下架不算失败，其他错误交给批处理重试
			if errors.Is(err, service.ErrProductNotFound) {
				log.WarnContext(ctx, "ordered product missing or inactive", "pid", item.ProductID)
				continue
			}
			return err
		}
	}

	log.InfoContext(ctx, "order event consumed", "order_id", event.OrderID, "items", len(event.Items))
	return nil
}
