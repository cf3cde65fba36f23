package get_appointment_checkins

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-GroomingAgenda/internal/api/handlers"
	submitCheckin "github.com/m04kA/SMC-GroomingAgenda/internal/usecase/submit_checkin"
)

const msgInvalidAppointmentID = "Agendamento inválido."

type Handler struct {
	reader HistoryReader
	logger Logger
}

func NewHandler(reader HistoryReader, logger Logger) *Handler {
	return &Handler{
		reader: reader,
		logger: logger,
	}
}

// Handle GET /api/v1/appointments/{appointmentId}/checkins
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["appointmentId"]

	records, err := h.reader.History(r.Context(), appointmentID)
	if err != nil {
		if errors.Is(err, submitCheckin.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidAppointmentID)
			return
		}
		h.logger.Error("GET /appointments/{id}/checkins - Failed to list: appointment_id=%s, error=%v", appointmentID, err)
		handlers.RespondInternalError(w)
		return
	}

	out := make([]handlers.CheckinRecordJSON, 0, len(records))
	for i := range records {
		out = append(out, handlers.CheckinRecordFromDomain(&records[i]))
	}
	handlers.RespondJSON(w, http.StatusOK, out)
}
