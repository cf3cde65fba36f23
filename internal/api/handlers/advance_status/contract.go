package advance_status

import (
	"context"

	advanceStatus "github.com/m04kA/SMC-GroomingAgenda/internal/usecase/advance_status"
)

type AdvanceStatusUseCase interface {
	Execute(ctx context.Context, req *advanceStatus.Request) (*advanceStatus.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
