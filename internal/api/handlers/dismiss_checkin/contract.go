package dismiss_checkin

type PendingRemover interface {
	Remove(userID, id string) bool
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
