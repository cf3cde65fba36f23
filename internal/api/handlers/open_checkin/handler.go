package open_checkin

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GroomingAgenda/internal/api/handlers"
	"github.com/m04kA/SMC-GroomingAgenda/internal/api/middleware"
	openCheckin "github.com/m04kA/SMC-GroomingAgenda/internal/usecase/open_checkin"
)

const (
	msgMissingSession      = "Sessão não encontrada."
	msgInvalidRequestBody  = "Requisição inválida."
	msgAppointmentNotFound = "Agendamento não encontrado. Atualize a agenda."
	msgQueueFull           = "Muitos check-ins em andamento. Tente novamente em instantes."
)

type Handler struct {
	useCase OpenCheckinUseCase
	logger  Logger
}

func NewHandler(useCase OpenCheckinUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/checkins
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	var req OpenCheckinRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /checkins - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &openCheckin.Request{
		State:         sess.State,
		Actor:         sess.Actor(),
		AppointmentID: req.AppointmentID,
	})
	if err != nil {
		switch {
		case errors.Is(err, openCheckin.ErrAppointmentNotFound):
			handlers.RespondNotFound(w, msgAppointmentNotFound)
		case errors.Is(err, openCheckin.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
		case errors.Is(err, openCheckin.ErrQueueFull):
			h.logger.Warn("POST /checkins - Queue full: appointment_id=%s", req.AppointmentID)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgQueueFull)
		default:
			h.logger.Error("POST /checkins - Failed to open check-in: appointment_id=%s, error=%v", req.AppointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /checkins - Check-in queued: checkin_id=%s, appointment_id=%s", result.CheckinID, req.AppointmentID)
	handlers.RespondJSON(w, http.StatusAccepted, &OpenCheckinResponse{CheckinID: result.CheckinID, Prompt: result.Prompt})
}
