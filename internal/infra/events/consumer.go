package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// Consumer читает события бронирований из Kafka
type Consumer struct {
	reader *kafka.Reader
}

// NewConsumer создает новый consumer в указанной consumer group
func NewConsumer(brokers []string, groupID, topic string) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:           brokers,
			GroupID:           groupID,
			Topic:             topic,
			HeartbeatInterval: 3 * time.Second,
			SessionTimeout:    30 * time.Second,
		}),
	}
}

// Consume читает события в цикле и передает их handler
// Блокируется до отмены контекста или ошибки чтения
func (c *Consumer) Consume(ctx context.Context, handler func(context.Context, BookingEvent) error) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return fmt.Errorf("events: read message: %w", err)
		}

		var event BookingEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return fmt.Errorf("events: unmarshal message: %w", err)
		}

		if err := handler(ctx, event); err != nil {
			return err
		}
	}
}

// Close закрывает reader
func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}
