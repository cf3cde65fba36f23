package reset_filters

import (
	"context"

	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
)

type FilterService interface {
	Reset(ctx context.Context, userID string) (domain.FilterSelection, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
