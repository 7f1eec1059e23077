package check_availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

// buildRange собирает кандидатный интервал из даты и времени начала/конца
func buildRange(date time.Time, startTime, endTime types.TimeString) (domain.TimeRange, error) {
	start, err := combine(date, startTime)
	if err != nil {
		return domain.TimeRange{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	end, err := combine(date, endTime)
	if err != nil {
		return domain.TimeRange{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	rng, err := domain.NewTimeRange(start, end)
	if err != nil {
		return domain.TimeRange{}, fmt.Errorf("%w: endTime must be after startTime", ErrInvalidInput)
	}

	return rng, nil
}

// combine прикладывает время суток "HH:MM" к календарной дате
func combine(date time.Time, t types.TimeString) (time.Time, error) {
	minutes, err := t.Minutes()
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(date.Year(), date.Month(), date.Day(), minutes/60, minutes%60, 0, 0, time.Local), nil
}
