package check_availability

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// Request модель запроса на поиск свободных комнат
type Request struct {
	UserID    string           // ID пользователя (для логирования, не влияет на результат)
	Date      time.Time        // Дата поиска (без времени)
	StartTime types.TimeString // Время начала слота (например, "10:00")
	EndTime   types.TimeString // Время конца слота
}

// Response модель ответа с результатом поиска
type Response struct {
	Available      []*domain.Room // Свободные комнаты, отсортированы по названию
	Conflicts      []RoomConflict // Занятые комнаты с пересекающимися бронированиями
	TimeSlot       TimeSlot       // Эхо запрошенного слота
	TotalAvailable int            // Количество свободных комнат
}

// RoomConflict комната, недоступная из-за пересекающихся бронирований
type RoomConflict struct {
	Room     *domain.Room      // Комната
	Bookings []*domain.Booking // Активные бронирования, пересекающие слот
}

// TimeSlot запрошенный временной слот
type TimeSlot struct {
	Date      string           // Дата в формате YYYY-MM-DD
	StartTime types.TimeString // Время начала
	EndTime   types.TimeString // Время конца
}
