package delete_appointment

import (
	"context"

	"github.com/m04kA/SMC-GroomingAgenda/internal/state"
	"github.com/m04kA/SMC-GroomingAgenda/internal/usecase/load_agenda"
)

// BackendClient интерфейс клиента backend
type BackendClient interface {
	DeleteAppointment(ctx context.Context, id string) error
}

// AgendaReloader reloads the current view of a session
type AgendaReloader interface {
	Reload(ctx context.Context, st *state.State, trigger string) (*load_agenda.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
