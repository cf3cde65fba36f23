package submit_checkin

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-GroomingAgenda/internal/api/handlers"
	"github.com/m04kA/SMC-GroomingAgenda/internal/api/middleware"
	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
	submitCheckin "github.com/m04kA/SMC-GroomingAgenda/internal/usecase/submit_checkin"
)

const (
	msgMissingUser        = "Autenticação necessária."
	msgInvalidRequestBody = "Requisição inválida."
	msgCheckinNotFound    = "Check-in não encontrado ou expirado."
	msgSaveFailed         = "Não foi possível salvar o check-in."
)

type Handler struct {
	useCase SubmitCheckinUseCase
	logger  Logger
}

func NewHandler(useCase SubmitCheckinUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/checkins/{checkinId}/submit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	checkinID := mux.Vars(r)["checkinId"]

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req SubmitCheckinRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /checkins/{id}/submit - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &submitCheckin.Request{
		Actor:        actor,
		CheckinID:    checkinID,
		PreBathNotes: req.PreBathNotes,
		Restrictions: req.Restrictions,
		Medications:  req.Medications,
	})
	if err != nil {
		if verr, ok := domain.AsValidationError(err); ok {
			handlers.RespondValidation(w, verr)
			return
		}
		switch {
		case errors.Is(err, submitCheckin.ErrCheckinNotFound):
			h.logger.Warn("POST /checkins/{id}/submit - Pending form not found: checkin_id=%s", checkinID)
			handlers.RespondNotFound(w, msgCheckinNotFound)
		case errors.Is(err, submitCheckin.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
		default:
			h.logger.Error("POST /checkins/{id}/submit - Failed to save: checkin_id=%s, error=%v", checkinID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgSaveFailed)
		}
		return
	}

	h.logger.Info("POST /checkins/{id}/submit - Saved: record_id=%s, appointment_id=%s, user_id=%s",
		result.Record.ID, result.Record.AppointmentID, actor.UserID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.CheckinRecordFromDomain(result.Record))
}
