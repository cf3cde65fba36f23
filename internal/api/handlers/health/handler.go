package health

import (
	"net/http"

	"github.com/m04kA/SMC-GroomingAgenda/internal/api/handlers"
)

// SessionCounter reports open agenda sessions
type SessionCounter interface {
	Len() int
}

type Handler struct {
	sessions SessionCounter
}

func NewHandler(sessions SessionCounter) *Handler {
	return &Handler{sessions: sessions}
}

// Handle GET /health
func (h *Handler) Handle(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "ok",
		"sessions": h.sessions.Len(),
	})
}
