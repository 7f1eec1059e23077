package update_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrAccessDenied возвращается, когда пользователь не владелец и не администратор
	ErrAccessDenied = errors.New("update_booking: access denied")

	// ErrAlreadyCancelled возвращается при попытке изменить отменённое бронирование
	ErrAlreadyCancelled = errors.New("update_booking: booking is already cancelled")

	// ErrAlreadyStarted возвращается при попытке изменить начавшееся
	// или завершившееся бронирование
	ErrAlreadyStarted = errors.New("update_booking: booking has already started")

	// ErrSlotConflict возвращается, когда новый интервал пересекается
	// с чужим активным бронированием комнаты
	ErrSlotConflict = errors.New("update_booking: time slot is already booked")

	// ErrValidationFailed возвращается, когда новый интервал не проходит бизнес-правила
	ErrValidationFailed = errors.New("update_booking: validation failed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
)
