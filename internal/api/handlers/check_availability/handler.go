package check_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	checkAvailability "github.com/m04kA/SMC-RoomBookingService/internal/usecase/check_availability"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

const (
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput = "некорректные параметры запроса"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/check-availability?date=&start_time=&end_time=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	query := r.URL.Query()

	date, err := time.ParseInLocation(domain.DateFormat, query.Get("date"), time.Local)
	if err != nil {
		h.logger.Warn("GET /rooms/check-availability - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &checkAvailability.Request{
		UserID:    userID,
		Date:      date,
		StartTime: types.TimeString(query.Get("start_time")),
		EndTime:   types.TimeString(query.Get("end_time")),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /rooms/check-availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /rooms/check-availability - Failed: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
