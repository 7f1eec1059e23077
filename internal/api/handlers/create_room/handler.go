package create_room

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/rooms"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/rooms/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgAccessDenied       = "создание комнат доступно только администраторам"
	msgRoomNameTaken      = "комната с таким названием уже существует"
)

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

// Handle POST /api/v1/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	var req models.CreateRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rooms - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrAccessDenied):
			h.logger.Warn("POST /rooms - Access denied: user=%s", userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, rooms.ErrRoomNameTaken):
			h.logger.Warn("POST /rooms - Room name taken: name=%s", req.Name)
			handlers.RespondConflict(w, msgRoomNameTaken)

		case errors.Is(err, rooms.ErrInvalidInput):
			h.logger.Warn("POST /rooms - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /rooms - Failed to create room: user=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rooms - Room created: room=%s, user=%s", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
