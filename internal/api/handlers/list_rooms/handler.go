package list_rooms

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/rooms"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/rooms/models"
)

const msgInvalidStatus = "некорректный фильтр статуса комнаты"

type Handler struct {
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListRoomsRequest{}
	query := r.URL.Query()

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}
	if search := query.Get("search"); search != "" {
		req.Search = &search
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrInvalidInput):
			h.logger.Warn("GET /rooms - Invalid status filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /rooms - Failed to list rooms: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
