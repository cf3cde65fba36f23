package save_appointment

import (
	"context"

	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
	"github.com/m04kA/SMC-GroomingAgenda/internal/state"
	saveAppointment "github.com/m04kA/SMC-GroomingAgenda/internal/usecase/save_appointment"
)

type SaveAppointmentUseCase interface {
	Execute(ctx context.Context, req *saveAppointment.Request) (*saveAppointment.Response, error)
}

type ProfessionalLoader interface {
	Professionals(ctx context.Context, st *state.State, storeID string) ([]domain.Professional, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
