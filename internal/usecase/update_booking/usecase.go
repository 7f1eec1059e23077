package update_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/internal/infra/events"
	bookingRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/booking"
	employeeClient "github.com/m04kA/SMC-RoomBookingService/internal/integrations/employeeservice"
	"github.com/m04kA/SMC-RoomBookingService/pkg/metrics"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// UseCase use case для изменения бронирования
type UseCase struct {
	bookingRepo    BookingRepository
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
	employeeClient EmployeeServiceClient,
	eventPublisher EventPublisher,
	txManager TransactionManager,
	policy domain.BookingPolicy,
	metrics *metrics.Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		employeeClient: employeeClient,
		eventPublisher: eventPublisher,
		txManager:      txManager,
		policy:         policy,
		metrics:        metrics,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case изменения бронирования
// Guard-проверки и смена интервала идут в одной сериализуемой транзакции.
// При проверке пересечений собственная запись бронирования исключается по ID:
// сдвиг встречи внутри своего же слота - не конфликт
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: booking=%s, user=%s", req.BookingID, req.UserID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	var result *domain.Booking
	conflict := false

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2. Читаем бронирование с блокировкой
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("UpdateBooking: booking id=%s not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: repository error for booking id=%s: %v", req.BookingID, err)
			return fmt.Errorf("%w: repository error: %v", ErrInternal, err)
		}

		// 3. Проверяем права доступа
		if !booking.IsOwnedBy(req.UserID) {
			if err := uc.checkAdminAccess(txCtx, req.UserID); err != nil {
				uc.logger.Warn("UpdateBooking: access denied for user=%s to booking id=%s", req.UserID, req.BookingID)
				return err
			}
		}

		// 4. Guard-проверки жизненного цикла
		if booking.IsCancelled() {
			uc.logger.Warn("UpdateBooking: booking id=%s is already cancelled", req.BookingID)
			return ErrAlreadyCancelled
		}
		if !booking.Range.Start().After(now) {
			uc.logger.Warn("UpdateBooking: booking id=%s has already started", req.BookingID)
			return ErrAlreadyStarted
		}

		upd := bookingRepo.BookingUpdate{
			Description: req.Description,
		}

		// 5. Новый интервал: бизнес-правила + проверка пересечений без своей записи
		if req.hasRangeChange() {
			candidate, err := buildRange(*req.Date, *req.StartTime, *req.EndTime)
			if err != nil {
				uc.logger.Warn("UpdateBooking: invalid new range: %v", err)
				return err
			}

			if err := uc.policy.ValidateRange(candidate, now); err != nil {
				uc.logger.Warn("UpdateBooking: policy rejected new range: %v", err)
				return fmt.Errorf("%w: %v", ErrValidationFailed, err)
			}

			overlapping, err := uc.bookingRepo.GetOverlapping(txCtx, booking.RoomID, candidate, &booking.ID)
			if err != nil {
				uc.logger.Error("UpdateBooking: failed to check overlapping bookings: %v", err)
				return fmt.Errorf("%w: failed to check overlapping bookings: %v", ErrInternal, err)
			}
			if len(overlapping) > 0 {
				uc.logger.Warn("UpdateBooking: room id=%s has %d conflicting bookings for new range",
					booking.RoomID, len(overlapping))
				conflict = true
				return ErrSlotConflict
			}

			upd.Range = &candidate
			booking.Range = candidate
		}

		if req.Description != nil {
			booking.Description = req.Description
		}

		// 6. Сохраняем изменения
		if err := uc.bookingRepo.Update(txCtx, req.BookingID, upd); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to update booking id=%s: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		result = booking
		return nil
	})

	if err != nil {
		if conflict {
			uc.metrics.BookingConflictsTotal.Inc()
		}
		return nil, err
	}

	uc.metrics.BookingsUpdatedTotal.Inc()
	uc.publishUpdated(ctx, result)

	uc.logger.Info("UpdateBooking: successfully updated booking id=%s", req.BookingID)

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

// checkAdminAccess проверяет, что пользователь является администратором
func (uc *UseCase) checkAdminAccess(ctx context.Context, userID string) error {
	employee, err := uc.employeeClient.GetEmployee(ctx, userID)
	if err != nil {
		if errors.Is(err, employeeClient.ErrEmployeeNotFound) {
			return ErrAccessDenied
		}
		uc.logger.Error("UpdateBooking: failed to get employee id=%s: %v", userID, err)
		return fmt.Errorf("%w: failed to get employee: %v", ErrInternal, err)
	}

	if !employee.IsAdmin() {
		return ErrAccessDenied
	}

	return nil
}

// publishUpdated публикует событие об изменённом бронировании
// Доставка best-effort: ошибка публикации логируется, изменение не откатывается
func (uc *UseCase) publishUpdated(ctx context.Context, booking *domain.Booking) {
	event := events.BookingEvent{
		Type:        events.TypeBookingUpdated,
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
		uc.logger.Error("UpdateBooking: failed to publish event for booking id=%s: %v", booking.ID, err)
	}
}
