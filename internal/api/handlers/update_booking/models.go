package update_booking

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	updateBooking "github.com/m04kA/SMC-RoomBookingService/internal/usecase/update_booking"
	"github.com/m04kA/SMC-RoomBookingService/pkg/ptr"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// UpdateBookingRequest HTTP request model.
// Интервал меняется целиком: date, startTime и endTime указываются вместе
type UpdateBookingRequest struct {
	Date        *string `json:"date,omitempty"`      // "2025-10-15"
	StartTime   *string `json:"startTime,omitempty"` // "10:00"
	EndTime     *string `json:"endTime,omitempty"`   // "11:00"
	Description *string `json:"description,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              string  `json:"id"`
	RoomID          string  `json:"roomId"`
	RoomName        string  `json:"roomName"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Description     *string `json:"description,omitempty"`
	BookedByUserID  string  `json:"bookedByUserId"`
	BookedByName    string  `json:"bookedByName"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateBookingRequest) ToUseCaseRequest(bookingID, userID string) (*updateBooking.Request, error) {
	req := &updateBooking.Request{
		BookingID:   bookingID,
		UserID:      userID,
		Description: r.Description,
	}

	if r.Date != nil {
		date, err := time.ParseInLocation(domain.DateFormat, *r.Date, time.Local)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if r.StartTime != nil {
		req.StartTime = ptr.Ptr(types.TimeString(*r.StartTime))
	}
	if r.EndTime != nil {
		req.EndTime = ptr.Ptr(types.TimeString(*r.EndTime))
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		RoomID:          resp.RoomID,
		RoomName:        resp.RoomName,
		StartTime:       resp.StartTime.Format(types.CivilTimeFormat),
		EndTime:         resp.EndTime.Format(types.CivilTimeFormat),
		DurationMinutes: resp.DurationMinutes,
		Description:     resp.Description,
		BookedByUserID:  resp.BookedByUserID,
		BookedByName:    resp.BookedByName,
		Status:          resp.Status,
		CreatedAt:       resp.CreatedAt.Format(types.CivilTimeFormat),
		UpdatedAt:       resp.UpdatedAt.Format(types.CivilTimeFormat),
	}
}
