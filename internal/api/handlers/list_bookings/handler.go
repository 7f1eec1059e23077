package list_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/bookings/models"
)

const (
	msgInvalidStatus = "некорректный фильтр статуса"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListBookingsRequest{}
	query := r.URL.Query()

	if roomID := query.Get("room_id"); roomID != "" {
		req.RoomID = &roomID
	}
	if userID := query.Get("user_id"); userID != "" {
		req.UserID = &userID
	}
	if status := query.Get("status"); status != "" {
		req.Status = &status
	}
	if query.Get("include_cancelled") == "true" {
		req.IncludeCancelled = true
	}

	if startDate := query.Get("start_date"); startDate != "" {
		parsed, err := time.ParseInLocation(domain.DateFormat, startDate, time.Local)
		if err != nil {
			h.logger.Warn("GET /bookings - Invalid start_date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.StartDate = &parsed
	}
	if endDate := query.Get("end_date"); endDate != "" {
		parsed, err := time.ParseInLocation(domain.DateFormat, endDate, time.Local)
		if err != nil {
			h.logger.Warn("GET /bookings - Invalid end_date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.EndDate = &parsed
	}

	result, err := h.service.ListBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid status filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
