package domain

import "github.com/m04kA/SMC-RoomBookingService/pkg/types"

// Default booking policy values
const (
	DefaultMinDurationMinutes = 30
	DefaultMaxDurationMinutes = 480 // 8 hours
)

// Default business hours: bookings must start and end inside this window
var (
	DefaultBusinessHoursStart = types.TimeString("08:00")
	DefaultBusinessHoursEnd   = types.TimeString("18:00")
)

// Business validation constants
const (
	MaxDescriptionLength = 500
	MinRoomCapacity      = 1
	MaxRoomCapacity      = 500
	MaxRoomNameLength    = 100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
