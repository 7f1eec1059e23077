package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе комнаты
	ErrInvalidStatus = errors.New("invalid room status")
)

// Request модели

// ListRoomsRequest запрос на получение списка комнат
type ListRoomsRequest struct {
	Status *string // Фильтр по административному статусу (опционально)
	Search *string // Поиск по имени/локации (опционально)
}

// CreateRoomRequest запрос на создание комнаты
type CreateRoomRequest struct {
	UserID      string   // Кто создает (должен быть администратором)
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Capacity    int      `json:"capacity"`
	Amenities   []string `json:"amenities"`
	Description string   `json:"description"`
	Status      *string  `json:"status,omitempty"` // По умолчанию available
}

// UpdateRoomRequest запрос на частичное обновление комнаты
// nil-поля не изменяются
type UpdateRoomRequest struct {
	UserID      string    // Кто обновляет (должен быть администратором)
	Name        *string   `json:"name,omitempty"`
	Location    *string   `json:"location,omitempty"`
	Capacity    *int      `json:"capacity,omitempty"`
	Amenities   *[]string `json:"amenities,omitempty"`
	Description *string   `json:"description,omitempty"`
	Status      *string   `json:"status,omitempty"`
}

// Response модели

// RoomResponse ответ с данными комнаты
type RoomResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Capacity    int       `json:"capacity"`
	Amenities   []string  `json:"amenities"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// RoomListResponse ответ со списком комнат
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// Методы конвертации

// FromDomainRoom конвертирует domain модель в DTO
func FromDomainRoom(r *domain.Room) *RoomResponse {
	if r == nil {
		return nil
	}

	amenities := r.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	return &RoomResponse{
		ID:          r.ID,
		Name:        r.Name,
		Location:    r.Location,
		Capacity:    r.Capacity,
		Amenities:   amenities,
		Description: r.Description,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// FromDomainRoomList конвертирует список domain моделей в DTO
func FromDomainRoomList(rooms []*domain.Room) *RoomListResponse {
	resp := &RoomListResponse{
		Rooms: make([]RoomResponse, 0, len(rooms)),
	}

	for _, room := range rooms {
		if roomResp := FromDomainRoom(room); roomResp != nil {
			resp.Rooms = append(resp.Rooms, *roomResp)
		}
	}

	return resp
}

// ToDomainRoomStatus конвертирует строку в domain.RoomStatus с валидацией
func ToDomainRoomStatus(status string) (domain.RoomStatus, error) {
	s := domain.RoomStatus(status)
	if !domain.ValidRoomStatus(s) {
		return "", ErrInvalidStatus
	}
	return s, nil
}
