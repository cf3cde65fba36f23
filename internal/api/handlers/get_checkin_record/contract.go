package get_checkin_record

import (
	"context"

	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
)

type RecordReader interface {
	Record(ctx context.Context, id string) (*domain.CheckinRecord, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
