package load_agenda

import (
	"context"
	"time"

	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
)

// BackendClient интерфейс клиента backend
type BackendClient interface {
	ListStores(ctx context.Context) ([]domain.Store, error)
	ListProfessionals(ctx context.Context, storeID string) ([]domain.Professional, error)
	ListAppointments(ctx context.Context, storeID string, date time.Time) ([]domain.Appointment, error)
	ListAppointmentsRange(ctx context.Context, storeID string, start, end time.Time) ([]domain.Appointment, error)
}

// Metrics records reload outcomes
type Metrics interface {
	ObserveReload(trigger string, err error, changed bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
