package get_stores

import (
	"context"

	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
	"github.com/m04kA/SMC-GroomingAgenda/internal/state"
)

type StoreLoader interface {
	Stores(ctx context.Context, st *state.State, refresh bool) ([]domain.Store, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
