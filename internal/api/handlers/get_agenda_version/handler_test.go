package get_agenda_version

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-GroomingAgenda/internal/api/middleware"
	"github.com/m04kA/SMC-GroomingAgenda/internal/session"
	"github.com/m04kA/SMC-GroomingAgenda/internal/state"
	"github.com/m04kA/SMC-GroomingAgenda/pkg/logger"
)

func TestHandle(t *testing.T) {
	sess := &session.Session{UserID: "u1", State: state.New()}
	sess.Observe("h1")
	sess.Observe("h1")
	sess.Observe("h2")

	tests := []struct {
		name  string
		query string
		code  int
		body  string
	}{
		{"unchanged", "?since=2", http.StatusOK, `{"version":2,"changed":false}`},
		{"changed", "?since=1", http.StatusOK, `{"version":2,"changed":true}`},
		{"first poll", "", http.StatusOK, `{"version":2,"changed":true}`},
		{"bad since", "?since=x", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/stores/s1/agenda/version"+tt.query, nil)
			req = req.WithContext(middleware.WithSession(req.Context(), sess))
			rec := httptest.NewRecorder()

			NewHandler(logger.Nop{}).Handle(rec, req)

			assert.Equal(t, tt.code, rec.Code)
			if tt.body != "" {
				assert.JSONEq(t, tt.body, rec.Body.String())
			}
		})
	}
}
