package dismiss_checkin

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-GroomingAgenda/internal/api/handlers"
	"github.com/m04kA/SMC-GroomingAgenda/internal/api/middleware"
)

const (
	msgMissingUser     = "Autenticação necessária."
	msgCheckinNotFound = "Check-in não encontrado."
)

type Handler struct {
	pending PendingRemover
	logger  Logger
}

func NewHandler(pending PendingRemover, logger Logger) *Handler {
	return &Handler{
		pending: pending,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/checkins/{checkinId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	checkinID := mux.Vars(r)["checkinId"]

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	if !h.pending.Remove(actor.UserID, checkinID) {
		h.logger.Warn("DELETE /checkins/{id} - Not found: checkin_id=%s, user_id=%s", checkinID, actor.UserID)
		handlers.RespondNotFound(w, msgCheckinNotFound)
		return
	}

	h.logger.Info("DELETE /checkins/{id} - Dismissed: checkin_id=%s, user_id=%s", checkinID, actor.UserID)
	w.WriteHeader(http.StatusNoContent)
}
