package save_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("save_appointment: invalid input data")

	// ErrAppointmentNotFound возвращается, когда редактируемая запись не загружена
	ErrAppointmentNotFound = errors.New("save_appointment: appointment not found")

	// ErrAppointmentLocked возвращается при изменении расписания или услуг оплаченной записи без прав администратора
	ErrAppointmentLocked = errors.New("save_appointment: appointment is invoiced")

	// ErrBackend возвращается, когда backend отклонил запись
	ErrBackend = errors.New("save_appointment: backend error")
)
