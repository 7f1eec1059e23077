package update_booking

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// Request модель запроса на изменение бронирования
// Интервал меняется целиком: Date, StartTime и EndTime указываются вместе.
// Description меняется независимо; nil-поля не изменяются
type Request struct {
	BookingID string // ID бронирования
	UserID    string // Кто изменяет (владелец или администратор)

	Date        *time.Time        // Новая дата (опционально, вместе с временем)
	StartTime   *types.TimeString // Новое время начала
	EndTime     *types.TimeString // Новое время конца
	Description *string           // Новая цель встречи (опционально)
}

// hasRangeChange возвращает true, если запрос меняет интервал бронирования
func (r *Request) hasRangeChange() bool {
	return r.Date != nil || r.StartTime != nil || r.EndTime != nil
}

// Response модель ответа с изменённым бронированием
type Response struct {
	ID              string    // ID бронирования
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
