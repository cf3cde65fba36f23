package get_checkins

import "github.com/m04kA/SMC-GroomingAgenda/internal/domain"

type PendingLister interface {
	List(userID string) []domain.CheckinForm
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
