package update_filters

import (
	"net/http"

	"github.com/m04kA/SMC-GroomingAgenda/internal/api/handlers"
	"github.com/m04kA/SMC-GroomingAgenda/internal/api/middleware"
)

const (
	msgMissingSession     = "Sessão não encontrada."
	msgInvalidRequestBody = "Requisição inválida."
)

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

// Handle PUT /api/v1/filters
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	var req handlers.FilterSelectionJSON
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /filters - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	previous := sess.State.Filters()
	saved, err := h.service.Save(r.Context(), sess.UserID, previous, req.ToDomain())
	if err != nil {
		h.logger.Warn("PUT /filters - Failed to persist selection: user_id=%s, error=%v", sess.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	sess.State.ReplaceFilters(saved)
	handlers.RespondJSON(w, http.StatusOK, handlers.FilterSelectionFromDomain(saved))
}
