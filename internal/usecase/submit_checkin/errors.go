package submit_checkin

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("submit_checkin: invalid input data")

	// ErrCheckinNotFound возвращается, когда подготовленная форма не найдена или устарела
	ErrCheckinNotFound = errors.New("submit_checkin: pending check-in not found")

	// ErrRecordNotFound возвращается, когда сохраненный check-in не найден
	ErrRecordNotFound = errors.New("submit_checkin: check-in record not found")

	// ErrRepository возвращается при ошибке хранилища
	ErrRepository = errors.New("submit_checkin: repository error")
)
