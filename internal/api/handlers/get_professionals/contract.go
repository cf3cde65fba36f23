package get_professionals

import (
	"context"

	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
	"github.com/m04kA/SMC-GroomingAgenda/internal/service/grid"
	"github.com/m04kA/SMC-GroomingAgenda/internal/state"
)

type ProfessionalLoader interface {
	Professionals(ctx context.Context, st *state.State, storeID string) ([]domain.Professional, error)
}

type ColumnBuilder interface {
	Columns(st *state.State, storeID string) []grid.ColumnView
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
