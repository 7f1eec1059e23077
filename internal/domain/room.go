package domain

import "time"

// RoomStatus is the administrative availability flag of a room,
// independent of time-based booking occupancy
type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "available"
	RoomStatusOccupied    RoomStatus = "occupied"
	RoomStatusMaintenance RoomStatus = "maintenance"
)

// ValidRoomStatus reports whether s is a known administrative status
func ValidRoomStatus(s RoomStatus) bool {
	return s == RoomStatusAvailable || s == RoomStatusOccupied || s == RoomStatusMaintenance
}

// Room represents a meeting room
type Room struct {
	ID          string
	Name        string
	Location    string
	Capacity    int
	Amenities   []string
	Description string
	Status      RoomStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsBookable returns true unless the room is administratively withdrawn.
// Maintenance is a hard override: no booking may target such a room
// regardless of time-slot freedom. Occupied is a display hint derived from
// current bookings and does not block future slots.
func (r *Room) IsBookable() bool {
	return r.Status != RoomStatusMaintenance
}

// RoomsFilter фильтр для выборки комнат
type RoomsFilter struct {
	Status *RoomStatus // Фильтр по административному статусу (опционально)
	Search *string     // Поиск по имени/локации (опционально)
}
