package get_user_bookings

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
	msgAccessDenied  = "нет прав на просмотр бронирований этого пользователя"
	msgInvalidStatus = "некорректный фильтр статуса"
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

// Handle GET /api/v1/users/{userId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requesterID := middleware.UserIDFromContext(r.Context())
	targetUserID := mux.Vars(r)["userId"]

	req := &models.GetUserBookingsRequest{
		UserID:      targetUserID,
		RequesterID: requesterID,
	}

	query := r.URL.Query()
	if status := query.Get("status"); status != "" {
		req.Status = &status
	}
	// По умолчанию отменённые скрываются, как в пользовательской истории
	if query.Get("include_cancelled") == "true" {
		req.IncludeCancelled = true
	}

	result, err := h.service.GetUserBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /users/%s/bookings - Access denied: requester=%s", targetUserID, requesterID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /users/%s/bookings - Invalid status filter: %v", targetUserID, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /users/%s/bookings - Failed to get bookings: error=%v", targetUserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
