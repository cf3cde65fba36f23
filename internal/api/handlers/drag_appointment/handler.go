package drag_appointment

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
	msgAppointmentNotFound = "Agendamento não encontrado. Atualize a agenda."
)

type Handler struct {
	authorizer DragAuthorizer
	logger     Logger
}

func NewHandler(authorizer DragAuthorizer, logger Logger) *Handler {
	return &Handler{
		authorizer: authorizer,
		logger:     logger,
	}
}

// Handle POST /api/v1/appointments/{appointmentId}/drag
// Проверка перед началом перетаскивания карточки.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["appointmentId"]

	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	appt, err := h.authorizer.Authorize(sess.State, sess.Actor(), appointmentID)
	if err != nil {
		switch {
		case errors.Is(err, moveAppointment.ErrAppointmentLocked):
			h.logger.Warn("POST /appointments/{id}/drag - Locked: appointment_id=%s, user_id=%s", appointmentID, sess.UserID)
			handlers.RespondForbidden(w, domain.MsgAppointmentLocked)
		case errors.Is(err, moveAppointment.ErrAppointmentNotFound), errors.Is(err, moveAppointment.ErrInvalidInput):
			handlers.RespondNotFound(w, msgAppointmentNotFound)
		default:
			h.logger.Error("POST /appointments/{id}/drag - Failed: appointment_id=%s, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &DragResponse{
		AppointmentID: appt.ID,
		Allowed:       true,
		Locked:        appt.IsLocked(),
	})
}
