package checkin

import "errors"

var (
	// ErrCheckinNotFound возвращается, когда check-in не найден
	ErrCheckinNotFound = errors.New("checkin.repository: checkin not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("checkin.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("checkin.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("checkin.repository: failed to scan row")
)
