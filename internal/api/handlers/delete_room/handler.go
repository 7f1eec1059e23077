package delete_room

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/rooms"
)

const (
	msgAccessDenied = "удаление комнат доступно только администраторам"
	msgRoomNotFound = "комната не найдена"
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

// Handle DELETE /api/v1/rooms/{roomId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	roomID := mux.Vars(r)["roomId"]

	err := h.service.Delete(r.Context(), roomID, userID)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrAccessDenied):
			h.logger.Warn("DELETE /rooms/%s - Access denied: user=%s", roomID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, rooms.ErrRoomNotFound):
			h.logger.Warn("DELETE /rooms/%s - Room not found", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		default:
			h.logger.Error("DELETE /rooms/%s - Failed to delete room: user=%s, error=%v", roomID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /rooms/%s - Room deleted: user=%s", roomID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
