package get_checkins

import (
	"net/http"

	"github.com/m04kA/SMC-GroomingAgenda/internal/api/handlers"
	"github.com/m04kA/SMC-GroomingAgenda/internal/api/middleware"
)

const msgMissingUser = "Autenticação necessária."

type Handler struct {
	pending PendingLister
	logger  Logger
}

func NewHandler(pending PendingLister, logger Logger) *Handler {
	return &Handler{
		pending: pending,
		logger:  logger,
	}
}

// Handle GET /api/v1/checkins
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromDomain(h.pending.List(actor.UserID)))
}
