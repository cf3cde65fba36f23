package session

import (
	"context"

	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
	"github.com/m04kA/SMC-GroomingAgenda/internal/state"
	"github.com/m04kA/SMC-GroomingAgenda/internal/usecase/load_agenda"
)

// AgendaReloader reloads the current view of a session
type AgendaReloader interface {
	Reload(ctx context.Context, st *state.State, trigger string) (*load_agenda.Response, error)
}

// FilterLoader returns the persisted filter selection of a user
type FilterLoader interface {
	Load(ctx context.Context, userID string) domain.FilterSelection
}

// Metrics tracks open sessions
type Metrics interface {
	SetActiveSessions(n int)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
