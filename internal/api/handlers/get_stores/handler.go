package get_stores

import (
	"net/http"

	"github.com/m04kA/SMC-GroomingAgenda/internal/api/handlers"
	"github.com/m04kA/SMC-GroomingAgenda/internal/api/middleware"
)

const (
	msgMissingSession = "Sessão não encontrada."
	msgStoresFailed   = "Não foi possível carregar as lojas."
)

type Handler struct {
	loader StoreLoader
	logger Logger
}

func NewHandler(loader StoreLoader, logger Logger) *Handler {
	return &Handler{
		loader: loader,
		logger: logger,
	}
}

// Handle GET /api/v1/stores?refresh=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	refresh := r.URL.Query().Get("refresh") == "true"
	stores, err := h.loader.Stores(r.Context(), sess.State, refresh)
	if err != nil {
		h.logger.Warn("GET /stores - Failed to load stores: user_id=%s, error=%v", sess.UserID, err)
		handlers.RespondBackendError(w, err, msgStoresFailed)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(stores))
}
