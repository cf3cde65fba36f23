package drag_appointment

import (
	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
	"github.com/m04kA/SMC-GroomingAgenda/internal/state"
)

type DragAuthorizer interface {
	Authorize(st *state.State, actor domain.Actor, appointmentID string) (*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
