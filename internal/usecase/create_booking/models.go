package create_booking

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID      string           // ID сотрудника (из X-User-ID)
	RoomID      string           // ID комнаты
	Date        time.Time        // Дата бронирования (без времени)
	StartTime   types.TimeString // Время начала (например, "10:00")
	EndTime     types.TimeString // Время конца (например, "11:00")
	Description *string          // Цель встречи (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              string    // ID созданного бронирования
	RoomID          string    // ID комнаты
	RoomName        string    // Название комнаты (денормализовано)
	StartTime       time.Time // Начало интервала
	EndTime         time.Time // Конец интервала
	DurationMinutes int       // Длительность в минутах
	Description     *string   // Цель встречи
	BookedByUserID  string    // ID владельца
	BookedByName    string    // Имя владельца (денормализовано)
	Status          string    // Статус бронирования

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
