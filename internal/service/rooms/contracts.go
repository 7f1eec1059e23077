package rooms

import (
	"context"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	roomRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/room"
	"github.com/m04kA/SMC-RoomBookingService/internal/integrations/employeeservice"
)

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) (*domain.Room, error)
	GetByID(ctx context.Context, id string) (*domain.Room, error)
	List(ctx context.Context, filter domain.RoomsFilter) ([]*domain.Room, error)
	Update(ctx context.Context, id string, upd roomRepo.RoomUpdate) error
	Delete(ctx context.Context, id string) error
}

// RoomCache интерфейс кеша списка комнат
type RoomCache interface {
	GetRooms(ctx context.Context) ([]*domain.Room, error)
	SetRooms(ctx context.Context, rooms []*domain.Room) error
	InvalidateRooms(ctx context.Context) error
}

// EmployeeServiceClient интерфейс клиента для EmployeeService
type EmployeeServiceClient interface {
	GetEmployee(ctx context.Context, employeeID string) (*employeeservice.Employee, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
