package move_appointment

import (
	"context"

	"github.com/m04kA/SMC-GroomingAgenda/internal/integrations/backend"
	"github.com/m04kA/SMC-GroomingAgenda/internal/state"
	"github.com/m04kA/SMC-GroomingAgenda/internal/usecase/load_agenda"
)

// BackendClient интерфейс клиента backend
type BackendClient interface {
	UpdateAppointment(ctx context.Context, id string, payload *backend.AppointmentPayload) error
}

// AgendaReloader reloads the current view of a session
type AgendaReloader interface {
	Reload(ctx context.Context, st *state.State, trigger string) (*load_agenda.Response, error)
}

// Metrics records move outcomes
type Metrics interface {
	ObserveMove(scope string, err error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
