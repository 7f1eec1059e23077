package update_room

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/rooms"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/rooms/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgAccessDenied       = "изменение комнат доступно только администраторам"
	msgRoomNotFound       = "комната не найдена"
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

// Handle PUT /api/v1/rooms/{roomId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	roomID := mux.Vars(r)["roomId"]

	var req models.UpdateRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /rooms/%s - Invalid request body: %v", roomID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID

	result, err := h.service.Update(r.Context(), roomID, &req)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrAccessDenied):
			h.logger.Warn("PUT /rooms/%s - Access denied: user=%s", roomID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, rooms.ErrRoomNotFound):
			h.logger.Warn("PUT /rooms/%s - Room not found", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, rooms.ErrRoomNameTaken):
			h.logger.Warn("PUT /rooms/%s - Room name taken", roomID)
			handlers.RespondConflict(w, msgRoomNameTaken)

		case errors.Is(err, rooms.ErrInvalidInput):
			h.logger.Warn("PUT /rooms/%s - Validation failed: %v", roomID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /rooms/%s - Failed to update room: user=%s, error=%v", roomID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /rooms/%s - Room updated: user=%s", roomID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
