package move_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("move_appointment: invalid input data")

	// ErrAppointmentNotFound возвращается, когда запись не загружена в состояние
	ErrAppointmentNotFound = errors.New("move_appointment: appointment not found")

	// ErrAppointmentLocked возвращается при попытке перенести оплаченную запись без прав администратора
	ErrAppointmentLocked = errors.New("move_appointment: appointment is invoiced")

	// ErrStoreNotFound возвращается, когда магазин записи не загружен
	ErrStoreNotFound = errors.New("move_appointment: store not found")

	// ErrBackend возвращается, когда backend отклонил перенос
	ErrBackend = errors.New("move_appointment: backend error")
)
