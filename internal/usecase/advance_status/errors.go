package advance_status

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("advance_status: invalid input data")

	// ErrAppointmentNotFound возвращается, когда запись не загружена в состояние
	ErrAppointmentNotFound = errors.New("advance_status: appointment not found")

	// ErrBackend возвращается, когда backend отклонил смену статуса
	ErrBackend = errors.New("advance_status: backend error")
)
