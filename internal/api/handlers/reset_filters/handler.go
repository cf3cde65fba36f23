package reset_filters

import (
	"net/http"

	"github.com/m04kA/SMC-GroomingAgenda/internal/api/handlers"
	"github.com/m04kA/SMC-GroomingAgenda/internal/api/middleware"
	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
)

const msgMissingSession = "Sessão não encontrada."

type Handler struct {
	service FilterService
	logger  Logger
}

func NewHandler(service FilterService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/filters
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	sel, err := h.service.Reset(r.Context(), sess.UserID)
	if err != nil {
		h.logger.Warn("DELETE /filters - Failed to reset stored selection: user_id=%s, error=%v", sess.UserID, err)
		sel = domain.DefaultFilterSelection()
	}

	sess.State.ReplaceFilters(sel)
	handlers.RespondJSON(w, http.StatusOK, handlers.FilterSelectionFromDomain(sel))
}
