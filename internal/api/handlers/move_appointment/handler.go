package move_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-GroomingAgenda/internal/api/handlers"
	"github.com/m04kA/SMC-GroomingAgenda/internal/api/middleware"
	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
	moveAppointment "github.com/m04kA/SMC-GroomingAgenda/internal/usecase/move_appointment"
)

const (
	msgMissingSession      = "Sessão não encontrada."
	msgInvalidRequestBody  = "Requisição inválida."
	msgAppointmentNotFound = "Agendamento não encontrado. Atualize a agenda."
	msgStoreNotFound       = "Loja não encontrada."
	msgMoveFailed          = "Não foi possível mover o agendamento."
)

type Handler struct {
	useCase MoveAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase MoveAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/{appointmentId}/move
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["appointmentId"]

	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	var req MoveAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments/{id}/move - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &moveAppointment.Request{
		State:         sess.State,
		Actor:         sess.Actor(),
		AppointmentID: appointmentID,
		CardItemIDs:   req.ItemIDs,
		TargetDate:    req.Date,
		TargetHour:    req.Hour,
		TargetColumn:  req.Column,
	})
	if err != nil {
		if verr, ok := domain.AsValidationError(err); ok {
			handlers.RespondValidation(w, verr)
			return
		}
		switch {
		case errors.Is(err, moveAppointment.ErrAppointmentLocked):
			h.logger.Warn("POST /appointments/{id}/move - Locked: appointment_id=%s, user_id=%s", appointmentID, sess.UserID)
			handlers.RespondForbidden(w, domain.MsgAppointmentLocked)

		case errors.Is(err, moveAppointment.ErrAppointmentNotFound):
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, moveAppointment.ErrStoreNotFound):
			handlers.RespondNotFound(w, msgStoreNotFound)

		case errors.Is(err, moveAppointment.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, moveAppointment.ErrBackend):
			h.logger.Warn("POST /appointments/{id}/move - Backend rejected move: appointment_id=%s, error=%v", appointmentID, err)
			handlers.RespondBackendError(w, err, msgMoveFailed)

		default:
			h.logger.Error("POST /appointments/{id}/move - Failed to move: appointment_id=%s, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/{id}/move - Moved: appointment_id=%s, scope=%s", appointmentID, result.Scope)
	handlers.RespondJSON(w, http.StatusOK, &MoveAppointmentResponse{
		AppointmentID: result.AppointmentID,
		Scope:         string(result.Scope),
		Hash:          result.Hash,
		Reloaded:      result.Reloaded,
	})
}
