package create_booking

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	createBooking "github.com/m04kA/SMC-RoomBookingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	RoomID      string  `json:"roomId"`
	Date        string  `json:"date"`      // "2025-10-15"
	StartTime   string  `json:"startTime"` // "10:00"
	EndTime     string  `json:"endTime"`   // "11:00"
	Description *string `json:"description,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              string  `json:"id"`
	RoomID          string  `json:"roomId"`
	RoomName        string  `json:"roomName"`
	StartTime       string  `json:"startTime"` // "2025-10-15T10:00:00"
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
func (r *CreateBookingRequest) ToUseCaseRequest(userID string) (*createBooking.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, r.Date, time.Local)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:      userID,
		RoomID:      r.RoomID,
		Date:        date,
		StartTime:   types.TimeString(r.StartTime),
		EndTime:     types.TimeString(r.EndTime),
		Description: r.Description,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
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
