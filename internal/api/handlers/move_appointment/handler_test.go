package move_appointment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GroomingAgenda/internal/api/middleware"
	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
	"github.com/m04kA/SMC-GroomingAgenda/internal/session"
	"github.com/m04kA/SMC-GroomingAgenda/internal/state"
	moveAppointment "github.com/m04kA/SMC-GroomingAgenda/internal/usecase/move_appointment"
	"github.com/m04kA/SMC-GroomingAgenda/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *moveAppointment.Request) (*moveAppointment.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*moveAppointment.Response)
	return resp, args.Error(1)
}

func newRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments/a1/move", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"appointmentId": "a1"})
	sess := &session.Session{UserID: "u1", State: state.New()}
	return req.WithContext(middleware.WithSession(req.Context(), sess))
}

func TestHandleMoved(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(r *moveAppointment.Request) bool {
		return r.AppointmentID == "a1" && r.TargetHour == "10:00" && r.TargetColumn == "p2" &&
			assert.ObjectsAreEqual([]string{"i2"}, r.CardItemIDs)
	})).Return(&moveAppointment.Response{AppointmentID: "a1", Scope: moveAppointment.ScopePartial, Hash: "h2", Reloaded: true}, nil)

	rec := httptest.NewRecorder()
	NewHandler(uc, logger.Nop{}).Handle(rec, newRequest(`{"itemIds":["i2"],"date":"2025-03-03","hour":"10:00","column":"p2"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	var body MoveAppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "partial", body.Scope)
	assert.True(t, body.Reloaded)
	uc.AssertExpectations(t)
}

func TestHandleErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"validation", domain.NewValidationError("targetHour", moveAppointment.MsgOutsideHours), http.StatusBadRequest,
			`{"error":"Horário fora do expediente da loja.","field":"targetHour"}`},
		{"locked", fmt.Errorf("%w: %s", moveAppointment.ErrAppointmentLocked, domain.MsgAppointmentLocked), http.StatusForbidden,
			`{"error":"` + domain.MsgAppointmentLocked + `"}`},
		{"not found", moveAppointment.ErrAppointmentNotFound, http.StatusNotFound, ""},
		{"unexpected", assert.AnError, http.StatusInternalServerError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := httptest.NewRecorder()
			NewHandler(uc, logger.Nop{}).Handle(rec, newRequest(`{"date":"2025-03-03","hour":"18:00","column":"p1"}`))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestHandleBadBody(t *testing.T) {
	uc := &mockUseCase{}
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.Nop{}).Handle(rec, newRequest(`{"hour":`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestHandleWithoutSession(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments/a1/move", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	NewHandler(&mockUseCase{}, logger.Nop{}).Handle(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
