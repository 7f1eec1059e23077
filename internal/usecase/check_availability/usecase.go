package check_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/ptr"
)

// UseCase use case для поиска свободных комнат на временной слот
type UseCase struct {
	roomProvider RoomProvider
	bookingRepo  BookingRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomProvider RoomProvider,
	bookingRepo BookingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomProvider: roomProvider,
		bookingRepo:  bookingRepo,
		logger:       logger,
	}
}

// Execute выполняет use case поиска свободных комнат.
// Результат носит справочный характер: финальная проверка конфликтов
// выполняется в сериализуемой транзакции при создании бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: user=%s, date=%s, slot=%s-%s",
		req.UserID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	candidate, err := buildRange(req.Date, req.StartTime, req.EndTime)
	if err != nil {
		uc.logger.Warn("CheckAvailability: invalid range: %v", err)
		return nil, err
	}

	// 2. Получаем все комнаты (через кеш)
	rooms, err := uc.roomProvider.GetAllRooms(ctx)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to get rooms: %v", ErrInternal, err)
	}

	// 3. Получаем активные бронирования на дату слота.
	// Бронирования не пересекают границу суток, выборки по дате достаточно
	dayStart := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, time.Local)
	bookings, err := uc.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{
		Status:    ptr.Ptr(domain.StatusActive),
		StartDate: ptr.Ptr(dayStart),
		EndDate:   ptr.Ptr(dayStart),
	})
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Разбиваем комнаты на свободные и занятые
	available, conflicts := findAvailableRooms(rooms, candidate, bookings, nil)

	uc.logger.Info("CheckAvailability: %d of %d rooms available", len(available), len(rooms))

	return &Response{
		Available: available,
		Conflicts: conflicts,
		TimeSlot: TimeSlot{
			Date:      req.Date.Format(domain.DateFormat),
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
		},
		TotalAvailable: len(available),
	}, nil
}
