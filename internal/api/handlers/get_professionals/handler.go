package get_professionals

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-GroomingAgenda/internal/api/handlers"
	"github.com/m04kA/SMC-GroomingAgenda/internal/api/middleware"
	"github.com/m04kA/SMC-GroomingAgenda/internal/usecase/load_agenda"
)

const (
	msgMissingSession = "Sessão não encontrada."
	msgStoreNotFound  = "Loja não encontrada."
	msgLoadFailed     = "Não foi possível carregar os profissionais."
)

type Handler struct {
	loader  ProfessionalLoader
	columns ColumnBuilder
	logger  Logger
}

func NewHandler(loader ProfessionalLoader, columns ColumnBuilder, logger Logger) *Handler {
	return &Handler{
		loader:  loader,
		columns: columns,
		logger:  logger,
	}
}

// Handle GET /api/v1/stores/{storeId}/professionals
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	storeID := mux.Vars(r)["storeId"]

	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	if _, err := h.loader.Professionals(r.Context(), sess.State, storeID); err != nil {
		switch {
		case errors.Is(err, load_agenda.ErrStoreNotFound):
			h.logger.Warn("GET /stores/{id}/professionals - Store not found: store_id=%s", storeID)
			handlers.RespondNotFound(w, msgStoreNotFound)
		default:
			h.logger.Error("GET /stores/{id}/professionals - Failed to load: store_id=%s, error=%v", storeID, err)
			handlers.RespondBackendError(w, err, msgLoadFailed)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &ProfessionalsResponse{
		StoreID: storeID,
		Columns: h.columns.Columns(sess.State, storeID),
		Kinds:   kindOptions(),
	})
}
