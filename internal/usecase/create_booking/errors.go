package create_booking

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrRoomNotBookable возвращается, когда комната выведена на обслуживание
	ErrRoomNotBookable = errors.New("create_booking: room is under maintenance")

	// ErrEmployeeNotFound возвращается, когда сотрудник не найден
	ErrEmployeeNotFound = errors.New("create_booking: employee not found")

	// ErrSlotConflict возвращается, когда запрошенный интервал пересекается
	// с активным бронированием комнаты
	ErrSlotConflict = errors.New("create_booking: time slot is already booked")

	// ErrValidationFailed возвращается, когда интервал не проходит бизнес-правила
	// (прошедшая дата, длительность, рабочие часы)
	ErrValidationFailed = errors.New("create_booking: validation failed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
