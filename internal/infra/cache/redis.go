// Package cache кеш списка комнат поверх Redis (cache-aside)
// Список комнат читается на каждый поиск доступности и меняется редко,
// поэтому кешируется целиком и инвалидируется при любой записи в комнаты
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

const roomsKey = "cache:rooms"

// RoomCache кеш комнат
type RoomCache struct {
	client   *redis.Client
	roomsTTL time.Duration
}

// NewRoomCache создает новый кеш комнат
func NewRoomCache(addr, password string, db int, roomsTTL time.Duration) *RoomCache {
	return &RoomCache{
		client:   redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db}),
		roomsTTL: roomsTTL,
	}
}

// Ping проверяет соединение с Redis
func (c *RoomCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close закрывает соединение с Redis
func (c *RoomCache) Close() error {
	return c.client.Close()
}

// GetRooms возвращает закешированный список комнат
// (nil, nil) при отсутствии значения в кеше
func (c *RoomCache) GetRooms(ctx context.Context) ([]*domain.Room, error) {
	data, err := c.client.Get(ctx, roomsKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("cache: get rooms: %w", err)
	}

	var rooms []*domain.Room
	if err := json.Unmarshal(data, &rooms); err != nil {
		return nil, fmt.Errorf("cache: unmarshal rooms: %w", err)
	}
	return rooms, nil
}

// SetRooms сохраняет список комнат в кеш
func (c *RoomCache) SetRooms(ctx context.Context, rooms []*domain.Room) error {
	payload, err := json.Marshal(rooms)
	if err != nil {
		return fmt.Errorf("cache: marshal rooms: %w", err)
	}
	return c.client.Set(ctx, roomsKey, payload, c.roomsTTL).Err()
}

// InvalidateRooms сбрасывает кеш комнат
// Вызывается при любом изменении комнат (create/update/delete)
func (c *RoomCache) InvalidateRooms(ctx context.Context) error {
	return c.client.Del(ctx, roomsKey).Err()
}
