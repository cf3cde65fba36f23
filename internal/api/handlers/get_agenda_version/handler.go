package get_agenda_version

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-GroomingAgenda/internal/api/handlers"
	"github.com/m04kA/SMC-GroomingAgenda/internal/api/middleware"
)

const (
	msgMissingSession = "Sessão não encontrada."
	msgInvalidSince   = "Parâmetro since inválido."
)

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle GET /api/v1/stores/{storeId}/agenda/version?since=N
// refresh=true asks the session poller for an immediate reload.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	query := r.URL.Query()
	var since uint64
	if raw := query.Get("since"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidSince)
			return
		}
		since = parsed
	}

	if query.Get("refresh") == "true" {
		sess.Refresh()
	}

	version := sess.Version()
	handlers.RespondJSON(w, http.StatusOK, &VersionResponse{Version: version, Changed: version != since})
}
