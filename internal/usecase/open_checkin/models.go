package open_checkin

import (
	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
	"github.com/m04kA/SMC-GroomingAgenda/internal/state"
)

// Request модель запроса на открытие check-in
type Request struct {
	State         *state.State
	Actor         domain.Actor
	AppointmentID string
}

// Response модель ответа
type Response struct {
	CheckinID string
	Prompt    string
}
