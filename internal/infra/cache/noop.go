package cache

import (
	"context"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// NoopRoomCache заглушка для окружений с выключенным Redis.
// Промах на каждом чтении: сервис всегда идёт в БД
type NoopRoomCache struct{}

// GetRooms всегда возвращает промах
func (NoopRoomCache) GetRooms(ctx context.Context) ([]*domain.Room, error) {
	return nil, nil
}

// SetRooms ничего не делает
func (NoopRoomCache) SetRooms(ctx context.Context, rooms []*domain.Room) error {
	return nil
}

// InvalidateRooms ничего не делает
func (NoopRoomCache) InvalidateRooms(ctx context.Context) error {
	return nil
}
