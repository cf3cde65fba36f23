package get_checkin_record

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-GroomingAgenda/internal/api/handlers"
	submitCheckin "github.com/m04kA/SMC-GroomingAgenda/internal/usecase/submit_checkin"
)

const msgRecordNotFound = "Check-in não encontrado."

type Handler struct {
	reader RecordReader
	logger Logger
}

func NewHandler(reader RecordReader, logger Logger) *Handler {
	return &Handler{
		reader: reader,
		logger: logger,
	}
}

// Handle GET /api/v1/checkin-records/{recordId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	recordID := mux.Vars(r)["recordId"]

	rec, err := h.reader.Record(r.Context(), recordID)
	if err != nil {
		switch {
		case errors.Is(err, submitCheckin.ErrRecordNotFound), errors.Is(err, submitCheckin.ErrInvalidInput):
			handlers.RespondNotFound(w, msgRecordNotFound)
		default:
			h.logger.Error("GET /checkin-records/{id} - Failed to get record: record_id=%s, error=%v", recordID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.CheckinRecordFromDomain(rec))
}
