package advance_status

import (
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-GroomingAgenda/internal/api/handlers"
	"github.com/m04kA/SMC-GroomingAgenda/internal/api/middleware"
	advanceStatus "github.com/m04kA/SMC-GroomingAgenda/internal/usecase/advance_status"
)

const (
	msgMissingSession      = "Sessão não encontrada."
	msgInvalidRequestBody  = "Requisição inválida."
	msgAppointmentNotFound = "Agendamento não encontrado. Atualize a agenda."
	msgAdvanceFailed       = "Não foi possível alterar o status."
)

type Handler struct {
	useCase AdvanceStatusUseCase
	logger  Logger
}

func NewHandler(useCase AdvanceStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/{appointmentId}/status/advance
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["appointmentId"]

	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	// Тело необязательно
	var req AdvanceStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /appointments/{id}/status/advance - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &advanceStatus.Request{
		State:         sess.State,
		Actor:         sess.Actor(),
		AppointmentID: appointmentID,
		ItemIDs:       req.ItemIDs,
		OpenCheckin:   req.OpenCheckin,
	})
	if err != nil {
		switch {
		case errors.Is(err, advanceStatus.ErrAppointmentNotFound):
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, advanceStatus.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, advanceStatus.ErrBackend):
			h.logger.Warn("POST /appointments/{id}/status/advance - Backend rejected: appointment_id=%s, error=%v", appointmentID, err)
			handlers.RespondBackendError(w, err, msgAdvanceFailed)

		default:
			h.logger.Error("POST /appointments/{id}/status/advance - Failed: appointment_id=%s, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/{id}/status/advance - %s -> %s: appointment_id=%s", result.From, result.To, appointmentID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
