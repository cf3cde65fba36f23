package open_checkin

import (
	"context"

	openCheckin "github.com/m04kA/SMC-GroomingAgenda/internal/usecase/open_checkin"
)

type OpenCheckinUseCase interface {
	Execute(ctx context.Context, req *openCheckin.Request) (*openCheckin.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
