package open_checkin

import (
	"context"

	"github.com/m04kA/SMC-GroomingAgenda/internal/checkin"
	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
)

// BackendClient интерфейс клиента backend
type BackendClient interface {
	GetCustomerWithGracefulDegradation(ctx context.Context, customerID string) *domain.Customer
	ListCustomerPets(ctx context.Context, customerID string) ([]domain.Pet, error)
}

// CheckinDispatcher queues check-in preparation without blocking
type CheckinDispatcher interface {
	Dispatch(task checkin.Task) (string, bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
