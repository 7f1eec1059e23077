package check_availability

import (
	"sort"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// findAvailableRooms разбивает комнаты на свободные и занятые для кандидатного слота.
// Комната свободна, когда её административный статус допускает бронирование
// (maintenance - жесткий запрет) и ни одно активное бронирование не пересекает слот.
// Статус occupied - отображаемая подсказка, он комнату не блокирует.
// Отменённые бронирования никогда не конфликтуют; при редактировании собственная
// запись исключается по excludeID. Результат детерминирован: сортировка по названию
func findAvailableRooms(
	rooms []*domain.Room,
	candidate domain.TimeRange,
	bookings []*domain.Booking,
	excludeID *string,
) ([]*domain.Room, []RoomConflict) {
	// Группируем конфликтующие бронирования по комнатам одним проходом
	conflictsByRoom := make(map[string][]*domain.Booking)
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if excludeID != nil && b.ID == *excludeID {
			continue
		}
		if b.Range.Overlaps(candidate) {
			conflictsByRoom[b.RoomID] = append(conflictsByRoom[b.RoomID], b)
		}
	}

	sorted := make([]*domain.Room, len(rooms))
	copy(sorted, rooms)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})

	available := make([]*domain.Room, 0, len(sorted))
	conflicts := make([]RoomConflict, 0)

	for _, room := range sorted {
		if !room.IsBookable() {
			continue
		}

		if overlapping, ok := conflictsByRoom[room.ID]; ok {
			conflicts = append(conflicts, RoomConflict{
				Room:     room,
				Bookings: overlapping,
			})
			continue
		}

		available = append(available, room)
	}

	return available, conflicts
}
