package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

var (
	// ErrInvalidStatus возвращается при некорректном фильтре статуса
	ErrInvalidStatus = errors.New("invalid booking status filter")
)

// Фильтры статусов на чтении
// Помимо хранимых статусов (active, cancelled) поддерживаются вычисляемые:
// completed (активное, но уже завершившееся) и upcoming (ещё не завершившееся)
const (
	FilterStatusActive    = "active"
	FilterStatusCancelled = "cancelled"
	FilterStatusCompleted = "completed"
	FilterStatusUpcoming  = "upcoming"
)

// ValidateStatusFilter проверяет значение фильтра статуса
func ValidateStatusFilter(status string) error {
	switch status {
	case FilterStatusActive, FilterStatusCancelled, FilterStatusCompleted, FilterStatusUpcoming:
		return nil
	default:
		return ErrInvalidStatus
	}
}

// Request модели

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID      string  // Чьи бронирования запрашиваются
	RequesterID string  // Кто запрашивает (владелец или админ)
	Status      *string // Фильтр по статусу (опционально)

	// По умолчанию отменённые бронирования скрываются
	IncludeCancelled bool
}

// ListBookingsRequest запрос на получение бронирований с гибкой фильтрацией
type ListBookingsRequest struct {
	RoomID           *string    // Фильтр по комнате (опционально)
	UserID           *string    // Фильтр по владельцу (опционально)
	Status           *string    // Фильтр по статусу (опционально)
	StartDate        *time.Time // Начало периода (опционально)
	EndDate          *time.Time // Конец периода (опционально)
	IncludeCancelled bool       // Включить отменённые бронирования
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID string // Кто отменяет
}

// Response модели

// BookingResponse ответ с данными бронирования
// Status всегда вычисляемый: активное бронирование с прошедшим концом
// диапазона отдается как completed
type BookingResponse struct {
	ID              string  `json:"id"`
	RoomID          string  `json:"roomId"`
	RoomName        string  `json:"roomName"`
	StartTime       string  `json:"startTime"` // "2025-10-15T10:00:00"
	EndTime         string  `json:"endTime"`   // "2025-10-15T11:00:00"
	DurationMinutes int     `json:"durationMinutes"`
	Description     *string `json:"description,omitempty"`
	BookedByUserID  string  `json:"bookedByUserId"`
	BookedByName    string  `json:"bookedByName"`
	Status          string  `json:"status"`

	CancelledAt *string `json:"cancelledAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
// now нужен для вычисления эффективного статуса
func FromDomainBooking(b *domain.Booking, now time.Time) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:              b.ID,
		RoomID:          b.RoomID,
		RoomName:        b.RoomName,
		StartTime:       b.Range.Start().Format(types.CivilTimeFormat),
		EndTime:         b.Range.End().Format(types.CivilTimeFormat),
		DurationMinutes: b.Range.DurationMinutes(),
		Description:     b.Description,
		BookedByUserID:  b.BookedByUserID,
		BookedByName:    b.BookedByName,
		Status:          string(b.EffectiveStatus(now)),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(types.CivilTimeFormat)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking, now time.Time) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking, now); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}
