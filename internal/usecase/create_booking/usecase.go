package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/internal/infra/events"
	roomRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/room"
	employeeClient "github.com/m04kA/SMC-RoomBookingService/internal/integrations/employeeservice"
	"github.com/m04kA/SMC-RoomBookingService/pkg/metrics"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo    BookingRepository
	roomRepo       RoomRepository
	employeeClient EmployeeServiceClient
	eventPublisher EventPublisher
	txManager      TransactionManager
	policy         domain.BookingPolicy
	metrics        *metrics.Metrics
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	employeeClient EmployeeServiceClient,
	eventPublisher EventPublisher,
	txManager TransactionManager,
	policy domain.BookingPolicy,
	metrics *metrics.Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		roomRepo:       roomRepo,
		employeeClient: employeeClient,
		eventPublisher: eventPublisher,
		txManager:      txManager,
		policy:         policy,
		metrics:        metrics,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case создания бронирования
// Валидация бизнес-правил - предварительный фильтр; решающая проверка
// пересечений идёт в сериализуемой транзакции с блокировкой строк,
// конкурирующий клиент на том же интервале получит отказ, а не двойную бронь
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%s, room=%s, date=%s, time=%s-%s",
		req.UserID, req.RoomID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Собираем интервал бронирования
	candidate, err := buildRange(req.Date, req.StartTime, req.EndTime)
	if err != nil {
		uc.logger.Warn("CreateBooking: invalid range: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 3. Проверяем бизнес-правила (дата, длительность, рабочие часы)
	if err := uc.policy.ValidateRange(candidate, now); err != nil {
		uc.logger.Warn("CreateBooking: policy rejected range: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	// 4. Получаем сотрудника для денормализации имени
	// При недоступности EmployeeService бронирование создаётся без имени
	bookedByName := ""
	employee, err := uc.employeeClient.GetEmployeeWithGracefulDegradation(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, employeeClient.ErrEmployeeNotFound) {
			uc.logger.Warn("CreateBooking: employee id=%s not found", req.UserID)
			return nil, ErrEmployeeNotFound
		}
		uc.logger.Warn("CreateBooking: proceeding without employee name for user=%s: %v", req.UserID, err)
	} else {
		bookedByName = employee.Name
	}

	var result *domain.Booking
	conflict := false

	// 5. Проверка доступности и вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		room, err := uc.roomRepo.GetByID(txCtx, req.RoomID)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				uc.logger.Warn("CreateBooking: room id=%s not found", req.RoomID)
				return ErrRoomNotFound
			}
			uc.logger.Error("CreateBooking: failed to get room id=%s: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}

		// Комната на обслуживании не бронируется независимо от свободных слотов
		if !room.IsBookable() {
			uc.logger.Warn("CreateBooking: room id=%s is under maintenance", req.RoomID)
			return ErrRoomNotBookable
		}

		overlapping, err := uc.bookingRepo.GetOverlapping(txCtx, req.RoomID, candidate, nil)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check overlapping bookings: %v", err)
			return fmt.Errorf("%w: failed to check overlapping bookings: %v", ErrInternal, err)
		}

		if len(overlapping) > 0 {
			uc.logger.Warn("CreateBooking: room id=%s has %d conflicting bookings for %s-%s",
				req.RoomID, len(overlapping), req.StartTime, req.EndTime)
			conflict = true
			return ErrSlotConflict
		}

		booking := &domain.Booking{
			RoomID:         req.RoomID,
			Range:          candidate,
			Description:    req.Description,
			BookedByUserID: req.UserID,
			Status:         domain.StatusActive,
			// Денормализация отображаемых имён
			RoomName:     room.Name,
			BookedByName: bookedByName,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if conflict {
			uc.metrics.BookingConflictsTotal.Inc()
		}
		return nil, err
	}

	uc.metrics.BookingsCreatedTotal.Inc()
	uc.publishCreated(ctx, result)

	uc.logger.Info("CreateBooking: successfully created booking id=%s", result.ID)

	return &Response{
		ID:              result.ID,
		RoomID:          result.RoomID,
		RoomName:        result.RoomName,
		StartTime:       result.Range.Start(),
		EndTime:         result.Range.End(),
		DurationMinutes: result.Range.DurationMinutes(),
		Description:     result.Description,
		BookedByUserID:  result.BookedByUserID,
		BookedByName:    result.BookedByName,
		Status:          string(result.Status),
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// publishCreated публикует событие о созданном бронировании
// Доставка best-effort: ошибка публикации логируется, бронирование не откатывается
func (uc *UseCase) publishCreated(ctx context.Context, booking *domain.Booking) {
	event := events.BookingEvent{
		Type:        events.TypeBookingCreated,
		BookingID:   booking.ID,
		RoomID:      booking.RoomID,
		RoomName:    booking.RoomName,
		UserID:      booking.BookedByUserID,
		UserName:    booking.BookedByName,
		StartTime:   types.NewCivilTime(booking.Range.Start()),
		EndTime:     types.NewCivilTime(booking.Range.End()),
		Description: booking.Description,
		OccurredAt:  types.NewCivilTime(uc.timeProvider.Now()),
	}

	if err := uc.eventPublisher.Publish(ctx, event); err != nil {
		uc.logger.Error("CreateBooking: failed to publish event for booking id=%s: %v", booking.ID, err)
	}
}
