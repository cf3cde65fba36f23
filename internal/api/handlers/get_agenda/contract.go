package get_agenda

import (
	"context"

	buildAgenda "github.com/m04kA/SMC-GroomingAgenda/internal/usecase/build_agenda"
	loadAgenda "github.com/m04kA/SMC-GroomingAgenda/internal/usecase/load_agenda"
)

type LoadAgendaUseCase interface {
	Execute(ctx context.Context, req *loadAgenda.Request) (*loadAgenda.Response, error)
}

type BuildAgendaUseCase interface {
	Execute(ctx context.Context, req *buildAgenda.Request) (*buildAgenda.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
