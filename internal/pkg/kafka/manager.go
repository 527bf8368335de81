package kafka

import (
	"Emporium/internal/api/config"
	"Emporium/internal/service"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// ConsumerManager 管理所有 Kafka 消费者
type ConsumerManager struct {
	orderConsumer sarama.ConsumerGroup
	orderHandler  sarama.ConsumerGroupHandler
}

// NewConsumerManager 构造函数
func NewConsumerManager(cfg *config.Config, activitySvc service.ActivityService) (*ConsumerManager, error) {
	saramaCfg := newSaramaConfig(cfg.Kafka)

	orderConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaOrderConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}
	orderHandler := NewOrdersHandler(activitySvc)

	return &ConsumerManager{
		orderConsumer: orderConsumer,
		orderHandler:  orderHandler,
	}, nil
}

// Start 启动所有消费者
func (m *ConsumerManager) Start(ctx context.Context, cfg *config.Config) error {
	go func() {
		topic := cfg.KafkaOrderConsumer.Topic
		log.Info("Order consumer started", "topic", topic)
		for {
			if err := m.orderConsumer.Consume(ctx, []string{topic}, m.orderHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	<-ctx.Done()
	log.Info("Kafka Manager shutting down...")

	if err := m.orderConsumer.Close(); err != nil {
		log.Error("Failed to close order consumer", "err", err)
	}

	return nil
}
