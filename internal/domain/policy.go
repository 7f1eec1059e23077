package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

var (
	// ErrPastDate is returned when the candidate date is before today
	ErrPastDate = errors.New("domain: booking date is in the past")

	// ErrPastStart is returned when a same-day candidate starts at or before now
	ErrPastStart = errors.New("domain: start time must be in the future for today's bookings")

	// ErrTooShort is returned when the candidate is shorter than the minimum duration
	ErrTooShort = errors.New("domain: booking is shorter than the minimum duration")

	// ErrTooLong is returned when the candidate is longer than the maximum duration
	ErrTooLong = errors.New("domain: booking exceeds the maximum duration")

	// ErrOutsideBusinessHours is returned when the candidate starts or ends
	// outside the configured business hours window
	ErrOutsideBusinessHours = errors.New("domain: booking is outside business hours")
)

// BookingPolicy holds the submission-time business rules for a candidate range.
// It is a pure pre-filter: passing it does not guarantee a room is free,
// the availability check inside the create/update transaction is authoritative.
type BookingPolicy struct {
	MinDurationMinutes int
	MaxDurationMinutes int
	BusinessHoursStart types.TimeString
	BusinessHoursEnd   types.TimeString
}

// DefaultBookingPolicy returns the policy with default bounds (30m-8h, 08:00-18:00)
func DefaultBookingPolicy() BookingPolicy {
	return BookingPolicy{
		MinDurationMinutes: DefaultMinDurationMinutes,
		MaxDurationMinutes: DefaultMaxDurationMinutes,
		BusinessHoursStart: DefaultBusinessHoursStart,
		BusinessHoursEnd:   DefaultBusinessHoursEnd,
	}
}

// ValidateRange checks the candidate range against the policy at the given instant.
//
// The date rule is deliberately asymmetric: a candidate on today's calendar
// date must start strictly in the future, while a candidate on any future
// calendar date is accepted regardless of its time-of-day.
func (p BookingPolicy) ValidateRange(candidate TimeRange, now time.Time) error {
	switch {
	case isDateBefore(candidate.Start(), now):
		return ErrPastDate
	case isSameDay(candidate.Start(), now) && !candidate.Start().After(now):
		return ErrPastStart
	}

	duration := candidate.DurationMinutes()
	if duration < p.MinDurationMinutes {
		return fmt.Errorf("%w: %d minutes, minimum is %d", ErrTooShort, duration, p.MinDurationMinutes)
	}
	if duration > p.MaxDurationMinutes {
		return fmt.Errorf("%w: %d minutes, maximum is %d", ErrTooLong, duration, p.MaxDurationMinutes)
	}

	startTime := types.NewTimeString(candidate.Start())
	endTime := types.NewTimeString(candidate.End())

	if startTime.IsBefore(p.BusinessHoursStart) || startTime.IsAfter(p.BusinessHoursEnd) ||
		endTime.IsBefore(p.BusinessHoursStart) || endTime.IsAfter(p.BusinessHoursEnd) {
		return fmt.Errorf("%w: allowed window is %s-%s", ErrOutsideBusinessHours, p.BusinessHoursStart, p.BusinessHoursEnd)
	}

	return nil
}

// isSameDay reports whether two instants fall on the same calendar date
func isSameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateBefore reports whether a's calendar date is strictly before b's
func isDateBefore(a, b time.Time) bool {
	aOnly := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, a.Location())
	bOnly := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, b.Location())
	return aOnly.Before(bOnly)
}
