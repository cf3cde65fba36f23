package load_agenda

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("load_agenda: invalid input data")

	// ErrStoreNotFound возвращается, когда магазин не найден среди доступных
	ErrStoreNotFound = errors.New("load_agenda: store not found")

	// ErrBackend возвращается при ошибке обращения к backend
	ErrBackend = errors.New("load_agenda: backend error")
)
