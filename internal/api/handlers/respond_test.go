package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
	"github.com/m04kA/SMC-GroomingAgenda/internal/integrations/backend"
)

func TestRespondBackendError(t *testing.T) {
	rejected := &backend.ResponseError{StatusCode: 422, Message: "Horário ocupado", Kind: backend.ErrBadRequest}

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"bad request keeps server message", fmt.Errorf("%w: save: %w", assert.AnError, rejected), http.StatusBadRequest, "Horário ocupado"},
		{"forbidden without message", &backend.ResponseError{StatusCode: 403, Kind: backend.ErrForbidden}, http.StatusForbidden, "fallback"},
		{"not found", &backend.ResponseError{StatusCode: 404, Message: "sumiu", Kind: backend.ErrNotFound}, http.StatusNotFound, "sumiu"},
		{"server failure", &backend.ResponseError{StatusCode: 503, Kind: backend.ErrUnavailable}, http.StatusBadGateway, msgBackendUnavailable},
		{"transport", fmt.Errorf("%w: dial tcp", backend.ErrInternal), http.StatusBadGateway, msgBackendUnavailable},
		{"unrelated", assert.AnError, http.StatusInternalServerError, msgInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			RespondBackendError(rec, tt.err, "fallback")

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantMsg, body.Error)
		})
	}
}

func TestRespondValidation(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondValidation(rec, domain.NewValidationError("hour", "Informe a hora."))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Informe a hora.","field":"hour"}`, rec.Body.String())
}

func TestDecodeJSONRejectsUnknownFields(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Rex","extra":1}`))
	assert.Error(t, DecodeJSON(req, &dst))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Rex"}`))
	require.NoError(t, DecodeJSON(req, &dst))
	assert.Equal(t, "Rex", dst.Name)
}

func TestFilterSelectionJSONRoundTrip(t *testing.T) {
	in := FilterSelectionJSON{Statuses: []string{"Em espera"}, ProfessionalIDs: []string{"p1"}, Kind: "banhista"}
	sel := in.ToDomain()
	assert.Equal(t, []domain.Status{domain.StatusWaiting}, sel.Statuses)
	assert.Equal(t, domain.KindBather, sel.Kind)

	out := FilterSelectionFromDomain(sel)
	assert.Equal(t, []string{"em_espera"}, out.Statuses)
}
