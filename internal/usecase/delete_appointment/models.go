package delete_appointment

import (
	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
	"github.com/m04kA/SMC-GroomingAgenda/internal/state"
)

// Request модель запроса на удаление записи
type Request struct {
	State         *state.State
	Actor         domain.Actor
	AppointmentID string
	Confirm       bool
}

// Response модель ответа
type Response struct {
	AppointmentID string
	Hash          string
	Reloaded      bool
}
