package filters

import "errors"

var (
	// ErrInvalidUser возвращается, когда не передан пользователь
	ErrInvalidUser = errors.New("filters.service: user id is required")

	// ErrRepository возвращается при ошибке сохранения выбора фильтров
	ErrRepository = errors.New("filters.service: repository error")
)
