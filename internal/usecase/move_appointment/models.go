package move_appointment

import (
	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
	"github.com/m04kA/SMC-GroomingAgenda/internal/state"
)

// Request модель запроса на перенос карточки
type Request struct {
	State         *state.State
	Actor         domain.Actor
	AppointmentID string
	CardItemIDs   []string // items of the dragged card
	TargetDate    string   // yyyy-mm-dd or dd/mm/yyyy
	TargetHour    string   // HH:MM
	TargetColumn  string   // professional id, or "no-preference"
}

// Response модель ответа
type Response struct {
	AppointmentID string
	Scope         Scope
	Hash          string
	Reloaded      bool
}
