package save_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-GroomingAgenda/internal/api/handlers"
	"github.com/m04kA/SMC-GroomingAgenda/internal/api/middleware"
	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
	saveAppointment "github.com/m04kA/SMC-GroomingAgenda/internal/usecase/save_appointment"
)

const (
	msgMissingSession      = "Sessão não encontrada."
	msgInvalidRequestBody  = "Requisição inválida."
	msgAppointmentNotFound = "Agendamento não encontrado. Atualize a agenda."
	msgSaveFailed          = "Não foi possível salvar o agendamento."
)

type Handler struct {
	useCase SaveAppointmentUseCase
	loader  ProfessionalLoader
	logger  Logger
}

func NewHandler(useCase SaveAppointmentUseCase, loader ProfessionalLoader, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		loader:  loader,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments и PUT /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["appointmentId"]
	route := "POST /appointments"
	if appointmentID != "" {
		route = "PUT /appointments/{id}"
	}

	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	var req SaveAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Профессионалы магазина нужны для проверки формы. Ошибка здесь проявится как ошибка валидации.
	if req.StoreID != "" {
		if _, err := h.loader.Professionals(r.Context(), sess.State, req.StoreID); err != nil {
			h.logger.Warn("%s - Professionals of store %s unavailable: %v", route, req.StoreID, err)
		}
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(sess.State, sess.Actor(), appointmentID))
	if err != nil {
		if verr, ok := domain.AsValidationError(err); ok {
			h.logger.Warn("%s - Validation failed: field=%s", route, verr.Field)
			handlers.RespondValidation(w, verr)
			return
		}
		switch {
		case errors.Is(err, saveAppointment.ErrAppointmentLocked):
			h.logger.Warn("%s - Appointment locked: appointment_id=%s, user_id=%s", route, appointmentID, sess.UserID)
			handlers.RespondForbidden(w, domain.MsgAppointmentLocked)

		case errors.Is(err, saveAppointment.ErrAppointmentNotFound):
			h.logger.Warn("%s - Appointment not found: appointment_id=%s", route, appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, saveAppointment.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, saveAppointment.ErrBackend):
			h.logger.Warn("%s - Backend rejected save: appointment_id=%s, error=%v", route, appointmentID, err)
			handlers.RespondBackendError(w, err, msgSaveFailed)

		default:
			h.logger.Error("%s - Failed to save appointment: appointment_id=%s, error=%v", route, appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	h.logger.Info("%s - Appointment saved: appointment_id=%s, user_id=%s", route, result.AppointmentID, sess.UserID)
	handlers.RespondJSON(w, status, FromUseCaseResponse(result))
}
