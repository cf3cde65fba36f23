package build_agenda

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("build_agenda: invalid input data")

	// ErrStoreNotFound возвращается, когда магазин не загружен в состояние
	ErrStoreNotFound = errors.New("build_agenda: store not found")
)
