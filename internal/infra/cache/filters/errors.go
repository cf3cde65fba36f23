package filters

import "errors"

var (
	// ErrMalformed возвращается, когда сохраненный JSON не удалось разобрать
	ErrMalformed = errors.New("filters.cache: malformed selection payload")

	// ErrRedis возвращается при ошибке обращения к Redis
	ErrRedis = errors.New("filters.cache: redis error")
)
