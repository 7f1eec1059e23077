package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusActive    BookingStatus = "active"
	StatusCancelled BookingStatus = "cancelled"

	// StatusCompleted is never persisted. A booking is completed once its
	// range has fully passed; the status is derived on every read path via
	// EffectiveStatus so list, detail and filter views cannot disagree.
	StatusCompleted BookingStatus = "completed"
)

// Booking represents a meeting room reservation
type Booking struct {
	ID     string
	RoomID string
	Range  TimeRange

	// Description is the meeting purpose, optional free text
	Description *string

	BookedByUserID string

	// Denormalized display data, populated at write time.
	// Never used for identity - relations are keyed by RoomID/BookedByUserID.
	RoomName     string
	BookedByName string

	Status BookingStatus

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EffectiveStatus returns the status as observed at the given instant.
// An active booking whose range has fully passed reads as completed.
func (b *Booking) EffectiveStatus(now time.Time) BookingStatus {
	if b.Status == StatusActive && !now.Before(b.Range.End()) {
		return StatusCompleted
	}
	return b.Status
}

// IsActive returns true if the booking still holds its slot
func (b *Booking) IsActive() bool {
	return b.Status == StatusActive
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// IsUpcoming returns true while the booking's range has not fully passed.
// An in-progress meeting is still upcoming/current by this rule.
func (b *Booking) IsUpcoming(now time.Time) bool {
	return b.Range.End().After(now)
}

// IsOwnedBy returns true if the booking belongs to the given user
func (b *Booking) IsOwnedBy(userID string) bool {
	return b.BookedByUserID == userID
}

// CanBeCancelled returns true if the booking is active and has not started yet
func (b *Booking) CanBeCancelled(now time.Time) bool {
	return b.Status == StatusActive && b.Range.Start().After(now)
}

// CanBeUpdated returns true if the booking is active and has not started yet
func (b *Booking) CanBeUpdated(now time.Time) bool {
	return b.Status == StatusActive && b.Range.Start().After(now)
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	RoomID    *string        // Фильтр по комнате (опционально)
	UserID    *string        // Фильтр по владельцу (опционально)
	Status    *BookingStatus // Фильтр по статусу (опционально)
	StartDate *time.Time     // Начало периода (опционально)
	EndDate   *time.Time     // Конец периода (опционально)

	// IncludeCancelled включает отменённые бронирования в выборку
	IncludeCancelled bool
}
