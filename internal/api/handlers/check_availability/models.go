package check_availability

import (
	roomsModels "github.com/m04kA/SMC-RoomBookingService/internal/service/rooms/models"
	checkAvailability "github.com/m04kA/SMC-RoomBookingService/internal/usecase/check_availability"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Available      []roomsModels.RoomResponse `json:"available"`
	Conflicts      []ConflictResponse         `json:"conflicts"`
	TimeSlot       TimeSlotResponse           `json:"timeSlot"`
	TotalAvailable int                        `json:"totalAvailable"`
}

// ConflictResponse комната с пересекающимися бронированиями
type ConflictResponse struct {
	Room     roomsModels.RoomResponse `json:"room"`
	Bookings []ConflictingBooking     `json:"bookings"`
}

// ConflictingBooking краткие данные бронирования, занимающего слот
type ConflictingBooking struct {
	ID           string `json:"id"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	BookedByName string `json:"bookedByName"`
}

// TimeSlotResponse эхо запрошенного слота
type TimeSlotResponse struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	available := make([]roomsModels.RoomResponse, 0, len(resp.Available))
	for _, room := range resp.Available {
		available = append(available, *roomsModels.FromDomainRoom(room))
	}

	conflicts := make([]ConflictResponse, 0, len(resp.Conflicts))
	for _, c := range resp.Conflicts {
		bookings := make([]ConflictingBooking, 0, len(c.Bookings))
		for _, b := range c.Bookings {
			bookings = append(bookings, ConflictingBooking{
				ID:           b.ID,
				StartTime:    b.Range.Start().Format(types.CivilTimeFormat),
				EndTime:      b.Range.End().Format(types.CivilTimeFormat),
				BookedByName: b.BookedByName,
			})
		}
		conflicts = append(conflicts, ConflictResponse{
			Room:     *roomsModels.FromDomainRoom(c.Room),
			Bookings: bookings,
		})
	}

	return &AvailabilityResponse{
		Available: available,
		Conflicts: conflicts,
		TimeSlot: TimeSlotResponse{
			Date:      resp.TimeSlot.Date,
			StartTime: string(resp.TimeSlot.StartTime),
			EndTime:   string(resp.TimeSlot.EndTime),
		},
		TotalAvailable: resp.TotalAvailable,
	}
}
