package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingPolicy_ValidateRange_DateRules(t *testing.T) {
	policy := DefaultBookingPolicy()
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		wantErr error
	}{
		{
			name:    "past calendar date",
			start:   time.Date(2025, 1, 9, 10, 0, 0, 0, time.Local),
			end:     time.Date(2025, 1, 9, 11, 0, 0, 0, time.Local),
			wantErr: ErrPastDate,
		},
		{
			name:    "same day, start before now",
			start:   time.Date(2025, 1, 10, 11, 0, 0, 0, time.Local),
			end:     time.Date(2025, 1, 10, 11, 45, 0, 0, time.Local),
			wantErr: ErrPastStart,
		},
		{
			name:    "same day, start exactly now",
			start:   time.Date(2025, 1, 10, 12, 0, 0, 0, time.Local),
			end:     time.Date(2025, 1, 10, 13, 0, 0, 0, time.Local),
			wantErr: ErrPastStart,
		},
		{
			name:  "same day, strictly future start",
			start: time.Date(2025, 1, 10, 14, 0, 0, 0, time.Local),
			end:   time.Date(2025, 1, 10, 15, 0, 0, 0, time.Local),
		},
		{
			// The asymmetry is deliberate: future dates pass the date check
			// even if the time-of-day is earlier than now.
			name:  "tomorrow with earlier time-of-day",
			start: time.Date(2025, 1, 11, 9, 0, 0, 0, time.Local),
			end:   time.Date(2025, 1, 11, 10, 0, 0, 0, time.Local),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := mustRange(t, tt.start, tt.end)
			err := policy.ValidateRange(candidate, now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestBookingPolicy_ValidateRange_DurationBounds(t *testing.T) {
	policy := DefaultBookingPolicy()
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.Local)
	day := time.Date(2025, 1, 11, 9, 0, 0, 0, time.Local)

	tests := []struct {
		name    string
		minutes int
		wantErr error
	}{
		{name: "29 minutes is too short", minutes: 29, wantErr: ErrTooShort},
		{name: "30 minutes passes", minutes: 30},
		{name: "480 minutes passes", minutes: 480},
		{name: "481 minutes is too long", minutes: 481, wantErr: ErrTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := mustRange(t, day, day.Add(time.Duration(tt.minutes)*time.Minute))
			err := policy.ValidateRange(candidate, now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestBookingPolicy_ValidateRange_BusinessHours(t *testing.T) {
	policy := DefaultBookingPolicy()
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name       string
		start, end time.Time
		wantErr    error
	}{
		{
			name:  "inside business hours",
			start: time.Date(2025, 1, 11, 9, 0, 0, 0, time.Local),
			end:   time.Date(2025, 1, 11, 10, 0, 0, 0, time.Local),
		},
		{
			name:  "boundaries are inclusive",
			start: time.Date(2025, 1, 11, 8, 0, 0, 0, time.Local),
			end:   time.Date(2025, 1, 11, 16, 0, 0, 0, time.Local),
		},
		{
			name:  "ends exactly at close",
			start: time.Date(2025, 1, 11, 17, 0, 0, 0, time.Local),
			end:   time.Date(2025, 1, 11, 18, 0, 0, 0, time.Local),
		},
		{
			name:    "starts before opening",
			start:   time.Date(2025, 1, 11, 7, 30, 0, 0, time.Local),
			end:     time.Date(2025, 1, 11, 9, 0, 0, 0, time.Local),
			wantErr: ErrOutsideBusinessHours,
		},
		{
			name:    "ends after closing",
			start:   time.Date(2025, 1, 11, 17, 30, 0, 0, time.Local),
			end:     time.Date(2025, 1, 11, 18, 30, 0, 0, time.Local),
			wantErr: ErrOutsideBusinessHours,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := mustRange(t, tt.start, tt.end)
			err := policy.ValidateRange(candidate, now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
