package delete_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("delete_appointment: invalid input data")

	// ErrNotConfirmed возвращается, когда удаление не подтверждено пользователем
	ErrNotConfirmed = errors.New("delete_appointment: deletion not confirmed")

	// ErrBackend возвращается, когда backend не удалил запись
	ErrBackend = errors.New("delete_appointment: backend error")
)
