package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/bookings/models"
)

const (
	msgBookingNotFound  = "бронирование не найдено"
	msgAccessDenied     = "нет прав на отмену этого бронирования"
	msgAlreadyCancelled = "бронирование уже отменено"
	msgAlreadyStarted   = "бронирование уже началось, отмена невозможна"
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

// Handle DELETE /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	bookingID := mux.Vars(r)["bookingId"]

	err := h.service.Cancel(r.Context(), bookingID, &models.CancelBookingRequest{UserID: userID})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("DELETE /bookings/%s - Booking not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("DELETE /bookings/%s - Access denied: user=%s", bookingID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, bookings.ErrAlreadyCancelled):
			h.logger.Warn("DELETE /bookings/%s - Already cancelled", bookingID)
			handlers.RespondBadRequest(w, msgAlreadyCancelled)

		case errors.Is(err, bookings.ErrAlreadyStarted):
			h.logger.Warn("DELETE /bookings/%s - Already started", bookingID)
			handlers.RespondBadRequest(w, msgAlreadyStarted)

		default:
			h.logger.Error("DELETE /bookings/%s - Failed to cancel booking: user=%s, error=%v",
				bookingID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings/%s - Booking cancelled: user=%s", bookingID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
