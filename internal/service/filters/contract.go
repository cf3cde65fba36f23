package filters

import (
	"context"

	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
)

// Repository persists one filter selection per user.
// Get returns nil, nil when nothing is stored.
type Repository interface {
	Get(ctx context.Context, userID string) (*domain.FilterSelection, error)
	Save(ctx context.Context, userID string, sel domain.FilterSelection) error
	Delete(ctx context.Context, userID string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
