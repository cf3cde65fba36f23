package submit_checkin

import (
	"context"

	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
)

// CheckinRepository интерфейс хранилища check-in
type CheckinRepository interface {
	Create(ctx context.Context, rec *domain.CheckinRecord) (*domain.CheckinRecord, error)
	GetByID(ctx context.Context, id string) (*domain.CheckinRecord, error)
	ListByAppointment(ctx context.Context, appointmentID string) ([]domain.CheckinRecord, error)
}

// PendingForms is the registry of prepared check-in forms
type PendingForms interface {
	Get(userID, id string) (domain.CheckinForm, bool)
	Remove(userID, id string) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
