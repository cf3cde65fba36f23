package get_appointment

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-GroomingAgenda/internal/api/handlers"
	"github.com/m04kA/SMC-GroomingAgenda/internal/api/middleware"
	saveAppointment "github.com/m04kA/SMC-GroomingAgenda/internal/usecase/save_appointment"
)

const (
	msgMissingSession      = "Sessão não encontrada."
	msgAppointmentNotFound = "Agendamento não encontrado. Atualize a agenda."
)

type Handler struct {
	opener EditOpener
	loc    *time.Location
	logger Logger
}

func NewHandler(opener EditOpener, loc *time.Location, logger Logger) *Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{
		opener: opener,
		loc:    loc,
		logger: logger,
	}
}

// Handle GET /api/v1/appointments/{appointmentId}
// Открывает запись на редактирование в сессии пользователя.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["appointmentId"]

	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	appt, err := h.opener.Open(sess.State, appointmentID)
	if err != nil {
		switch {
		case errors.Is(err, saveAppointment.ErrAppointmentNotFound), errors.Is(err, saveAppointment.ErrInvalidInput):
			h.logger.Warn("GET /appointments/{id} - Appointment not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)
		default:
			h.logger.Error("GET /appointments/{id} - Failed to open: appointment_id=%s, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(appt, h.loc))
}
