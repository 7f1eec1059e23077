package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrEmployeeNotFound возвращается, когда сотрудник не найден в EmployeeService
	ErrEmployeeNotFound = errors.New("bookings: employee not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("bookings: access denied")

	// ErrAlreadyCancelled возвращается при повторной отмене бронирования
	ErrAlreadyCancelled = errors.New("bookings: booking is already cancelled")

	// ErrAlreadyStarted возвращается при попытке отменить начавшееся
	// или завершившееся бронирование
	ErrAlreadyStarted = errors.New("bookings: booking has already started")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)
