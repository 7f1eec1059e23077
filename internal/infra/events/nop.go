package events

import "context"

// NopPublisher заглушка для окружений с выключенной Kafka
type NopPublisher struct{}

// Publish ничего не делает
func (NopPublisher) Publish(ctx context.Context, event BookingEvent) error {
	return nil
}
