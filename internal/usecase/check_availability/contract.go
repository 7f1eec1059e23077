package check_availability

import (
	"context"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// RoomProvider интерфейс источника списка комнат.
// В production сюда подключается сервис комнат с redis-кешем
type RoomProvider interface {
	GetAllRooms(ctx context.Context) ([]*domain.Room, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
