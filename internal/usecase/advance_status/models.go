package advance_status

import (
	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
	"github.com/m04kA/SMC-GroomingAgenda/internal/state"
)

// Request модель запроса на продвижение статуса
type Request struct {
	State         *state.State
	Actor         domain.Actor
	AppointmentID string
	ItemIDs       []string // empty: the whole appointment
	OpenCheckin   bool     // the user accepted the check-in prompt
}

// Response модель ответа
type Response struct {
	AppointmentID string
	ItemIDs       []string
	From          domain.Status
	To            domain.Status

	// Set when To opens the check-in prompt
	CheckinPrompt string
	CheckinID     string
	CheckinQueued bool

	Hash     string
	Reloaded bool
}
