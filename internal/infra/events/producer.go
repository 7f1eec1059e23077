package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// Producer публикует события бронирований в Kafka
type Producer struct {
	writer *kafka.Writer
	topic  string
}

// NewProducer создает новый producer
func NewProducer(brokers []string, topic string) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	return &Producer{writer: writer, topic: topic}
}

// Publish публикует событие бронирования
// Ключ сообщения - ID комнаты: события по одной комнате попадают в одну
// партицию и читаются в порядке записи
func (p *Producer) Publish(ctx context.Context, event BookingEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("events: marshal event: %w", err)
	}

	message := kafka.Message{
		Key:   []byte(event.RoomID),
		Value: data,
		Time:  time.Now(),
	}

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("events: write message: %w", err)
	}

	return nil
}

// Close закрывает writer
func (p *Producer) Close() error {
	return p.writer.Close()
}
