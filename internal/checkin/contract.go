package checkin

import (
	"context"

	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
)

// Opener hydrates a check-in form for a task
type Opener interface {
	Open(ctx context.Context, task Task) (*domain.CheckinForm, error)
}

// Metrics counts attempt outcomes
type Metrics interface {
	ObserveCheckinAttempt(result string)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
