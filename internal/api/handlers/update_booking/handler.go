package update_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/api/middleware"
	updateBooking "github.com/m04kA/SMC-RoomBookingService/internal/usecase/update_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgBookingNotFound    = "бронирование не найдено"
	msgAccessDenied       = "нет прав на изменение этого бронирования"
	msgAlreadyCancelled   = "бронирование уже отменено"
	msgAlreadyStarted     = "бронирование уже началось"
	msgSlotConflict       = "выбранный временной слот уже занят"
)

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	bookingID := mux.Vars(r)["bookingId"]

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/%s - Invalid request body: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingID, userID)
	if err != nil {
		h.logger.Warn("PUT /bookings/%s - Failed to parse date: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/%s - Booking not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, updateBooking.ErrAccessDenied):
			h.logger.Warn("PUT /bookings/%s - Access denied: user=%s", bookingID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, updateBooking.ErrAlreadyCancelled):
			h.logger.Warn("PUT /bookings/%s - Already cancelled", bookingID)
			handlers.RespondBadRequest(w, msgAlreadyCancelled)

		case errors.Is(err, updateBooking.ErrAlreadyStarted):
			h.logger.Warn("PUT /bookings/%s - Already started", bookingID)
			handlers.RespondBadRequest(w, msgAlreadyStarted)

		case errors.Is(err, updateBooking.ErrSlotConflict):
			h.logger.Warn("PUT /bookings/%s - Slot conflict: user=%s", bookingID, userID)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, updateBooking.ErrValidationFailed),
			errors.Is(err, updateBooking.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/%s - Validation failed: %v", bookingID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /bookings/%s - Failed to update booking: user=%s, error=%v",
				bookingID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/%s - Booking updated: user=%s", bookingID, userID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
