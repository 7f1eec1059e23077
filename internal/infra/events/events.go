// Package events публикация и чтение событий жизненного цикла бронирований
// через Kafka. События публикуются после коммита транзакции; доставка
// best-effort - ошибка публикации логируется, но не откатывает бронирование
package events

import "github.com/m04kA/SMC-RoomBookingService/pkg/types"

// Типы событий бронирования
const (
	TypeBookingCreated   = "booking.created"
	TypeBookingUpdated   = "booking.updated"
	TypeBookingCancelled = "booking.cancelled"
)

// BookingEvent событие изменения бронирования
type BookingEvent struct {
	Type         string          `json:"type"`
	BookingID    string          `json:"bookingId"`
	RoomID       string          `json:"roomId"`
	RoomName     string          `json:"roomName"`
	UserID       string          `json:"userId"`
	UserName     string          `json:"userName"`
	StartTime    types.CivilTime `json:"startTime"`
	EndTime      types.CivilTime `json:"endTime"`
	Description  *string         `json:"description,omitempty"`
	OccurredAt   types.CivilTime `json:"occurredAt"`
}
