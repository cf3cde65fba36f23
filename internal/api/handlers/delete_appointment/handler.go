package delete_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-GroomingAgenda/internal/api/handlers"
	"github.com/m04kA/SMC-GroomingAgenda/internal/api/middleware"
	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
	deleteAppointment "github.com/m04kA/SMC-GroomingAgenda/internal/usecase/delete_appointment"
)

const (
	msgMissingSession  = "Sessão não encontrada."
	msgConfirmRequired = "Confirme a exclusão do atendimento."
	msgInvalidRequest  = "Requisição inválida."
	msgDeleteFailed    = "Não foi possível excluir o atendimento."
)

type Handler struct {
	useCase DeleteAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase DeleteAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/appointments/{appointmentId}?confirm=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["appointmentId"]

	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &deleteAppointment.Request{
		State:         sess.State,
		Actor:         sess.Actor(),
		AppointmentID: appointmentID,
		Confirm:       r.URL.Query().Get("confirm") == "true",
	})
	if err != nil {
		switch {
		case errors.Is(err, deleteAppointment.ErrNotConfirmed):
			handlers.RespondJSON(w, http.StatusPreconditionRequired, &ConfirmationResponse{
				Error:        msgConfirmRequired,
				Title:        domain.MsgDeleteTitle,
				Confirmation: true,
			})

		case errors.Is(err, deleteAppointment.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, deleteAppointment.ErrBackend):
			h.logger.Warn("DELETE /appointments/{id} - Backend rejected delete: appointment_id=%s, error=%v", appointmentID, err)
			handlers.RespondBackendError(w, err, msgDeleteFailed)

		default:
			h.logger.Error("DELETE /appointments/{id} - Failed to delete: appointment_id=%s, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /appointments/{id} - Appointment deleted: appointment_id=%s, user_id=%s", appointmentID, sess.UserID)
	handlers.RespondJSON(w, http.StatusOK, &DeleteAppointmentResponse{
		AppointmentID: result.AppointmentID,
		Hash:          result.Hash,
		Reloaded:      result.Reloaded,
	})
}
