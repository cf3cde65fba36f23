package get_appointment_checkins

import (
	"context"

	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
)

type HistoryReader interface {
	History(ctx context.Context, appointmentID string) ([]domain.CheckinRecord, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
