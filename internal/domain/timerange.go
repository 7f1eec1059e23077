package domain

import (
	"errors"
	"time"
)

var (
	// ErrInvalidTimeRange is returned when a range has end <= start
	ErrInvalidTimeRange = errors.New("domain: time range end must be after start")
)

// TimeRange is a half-open time interval [Start, End).
// Immutable once constructed; NewTimeRange is the only way to obtain a valid value.
type TimeRange struct {
	start time.Time
	end   time.Time
}

// NewTimeRange constructs a TimeRange, rejecting zero-length and inverted ranges.
func NewTimeRange(start, end time.Time) (TimeRange, error) {
	if !end.After(start) {
		return TimeRange{}, ErrInvalidTimeRange
	}
	return TimeRange{start: start, end: end}, nil
}

// Start returns the inclusive start instant.
func (r TimeRange) Start() time.Time {
	return r.start
}

// End returns the exclusive end instant.
func (r TimeRange) End() time.Time {
	return r.end
}

// IsZero returns true for the zero value (never produced by NewTimeRange).
func (r TimeRange) IsZero() bool {
	return r.start.IsZero() && r.end.IsZero()
}

// DurationMinutes returns the range length in whole minutes.
func (r TimeRange) DurationMinutes() int {
	return int(r.end.Sub(r.start) / time.Minute)
}

// Overlaps reports whether two half-open intervals intersect.
// Touching endpoints do not overlap: a booking ending at 10:00 is
// compatible with one starting at 10:00.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.start.Before(other.end) && other.start.Before(r.end)
}

// Contains reports whether the instant t falls inside the range.
func (r TimeRange) Contains(t time.Time) bool {
	return !t.Before(r.start) && t.Before(r.end)
}
