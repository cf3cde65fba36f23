package update_filters

import (
	"context"

	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
)

type FilterService interface {
	Save(ctx context.Context, userID string, previous, next domain.FilterSelection) (domain.FilterSelection, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
