package open_checkin

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("open_checkin: invalid input data")

	// ErrAppointmentNotFound возвращается, когда запись не загружена в состояние
	ErrAppointmentNotFound = errors.New("open_checkin: appointment not found")

	// ErrQueueFull возвращается, когда очередь check-in переполнена
	ErrQueueFull = errors.New("open_checkin: check-in queue is full")

	// ErrBackendUnavailable возвращается, когда ни клиент, ни питомцы не были получены
	ErrBackendUnavailable = errors.New("open_checkin: backend unavailable")
)
