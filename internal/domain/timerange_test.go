package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRange(t *testing.T, start, end time.Time) TimeRange {
	t.Helper()
	r, err := NewTimeRange(start, end)
	require.NoError(t, err)
	return r
}

func at(hour, min int) time.Time {
	return time.Date(2025, 1, 10, hour, min, 0, 0, time.Local)
}

func TestNewTimeRange(t *testing.T) {
	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		wantErr error
	}{
		{
			name:  "valid range",
			start: at(9, 0),
			end:   at(10, 0),
		},
		{
			name:    "zero length range is invalid",
			start:   at(9, 0),
			end:     at(9, 0),
			wantErr: ErrInvalidTimeRange,
		},
		{
			name:    "inverted range is invalid",
			start:   at(10, 0),
			end:     at(9, 0),
			wantErr: ErrInvalidTimeRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewTimeRange(tt.start, tt.end)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.start, r.Start())
			assert.Equal(t, tt.end, r.End())
		})
	}
}

func TestTimeRange_DurationMinutes(t *testing.T) {
	r := mustRange(t, at(9, 0), at(10, 30))
	assert.Equal(t, 90, r.DurationMinutes())
}

func TestTimeRange_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a    TimeRange
		b    TimeRange
		want bool
	}{
		{
			name: "partial overlap",
			a:    mustRange(t, at(9, 0), at(10, 0)),
			b:    mustRange(t, at(9, 30), at(10, 30)),
			want: true,
		},
		{
			name: "touching endpoints do not overlap",
			a:    mustRange(t, at(9, 0), at(10, 0)),
			b:    mustRange(t, at(10, 0), at(11, 0)),
			want: false,
		},
		{
			name: "disjoint ranges",
			a:    mustRange(t, at(9, 0), at(10, 0)),
			b:    mustRange(t, at(11, 0), at(12, 0)),
			want: false,
		},
		{
			name: "containment",
			a:    mustRange(t, at(9, 0), at(12, 0)),
			b:    mustRange(t, at(10, 0), at(11, 0)),
			want: true,
		},
		{
			name: "identical ranges",
			a:    mustRange(t, at(9, 0), at(10, 0)),
			b:    mustRange(t, at(9, 0), at(10, 0)),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// Overlap is symmetric
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestTimeRange_Contains(t *testing.T) {
	r := mustRange(t, at(9, 0), at(10, 0))

	assert.True(t, r.Contains(at(9, 0)), "start is inclusive")
	assert.True(t, r.Contains(at(9, 30)))
	assert.False(t, r.Contains(at(10, 0)), "end is exclusive")
	assert.False(t, r.Contains(at(8, 59)))
}
