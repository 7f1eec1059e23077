package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/internal/infra/events"
	bookingRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/booking"
	employeeClient "github.com/m04kA/SMC-RoomBookingService/internal/integrations/employeeservice"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-RoomBookingService/pkg/metrics"
	"github.com/m04kA/SMC-RoomBookingService/pkg/ptr"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo    BookingRepository
	employeeClient EmployeeServiceClient
	eventPublisher EventPublisher
	txManager      TransactionManager
	metrics        *metrics.Metrics
	timeProvider   TimeProvider
	logger         Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	employeeClient EmployeeServiceClient,
	eventPublisher EventPublisher,
	txManager TransactionManager,
	metrics *metrics.Metrics,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:    bookingRepo,
		employeeClient: employeeClient,
		eventPublisher: eventPublisher,
		txManager:      txManager,
		metrics:        metrics,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь может видеть только своё бронирование, администратор - любое
func (s *Service) GetByID(ctx context.Context, id string, requesterID string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s for user=%s", id, requesterID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !booking.IsOwnedBy(requesterID) {
		if err := s.checkAdminAccess(ctx, requesterID); err != nil {
			s.logger.Warn("GetByID: access denied for user=%s to booking id=%s", requesterID, id)
			return nil, err
		}
	}

	s.logger.Info("GetByID: successfully fetched booking id=%s", id)
	return models.FromDomainBooking(booking, s.timeProvider.Now()), nil
}

// GetUserBookings получает историю бронирований пользователя
// Отменённые бронирования по умолчанию скрываются. Свою историю может
// смотреть сам пользователь, чужую - только администратор
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%s, requester=%s", req.UserID, req.RequesterID)

	if req.UserID == "" {
		return nil, fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if req.RequesterID != req.UserID {
		if err := s.checkAdminAccess(ctx, req.RequesterID); err != nil {
			s.logger.Warn("GetUserBookings: access denied for requester=%s to user=%s bookings", req.RequesterID, req.UserID)
			return nil, err
		}
	}

	filter := domain.BookingsFilter{
		UserID:           &req.UserID,
		IncludeCancelled: req.IncludeCancelled,
	}

	if err := applyStatusToFilter(&filter, req.Status); err != nil {
		s.logger.Warn("GetUserBookings: invalid status=%s for user=%s", *req.Status, req.UserID)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	bookings = applyComputedStatusFilter(bookings, req.Status, now)

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%s", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings, now), nil
}

// ListBookings получает бронирования с гибкой фильтрацией
// Расписание комнат видно всем аутентифицированным сотрудникам
//
// Примеры использования:
// - Все незавершённые бронирования: Status = "upcoming"
// - Бронирования комнаты: указать RoomID
// - Бронирования за период: StartDate и EndDate
// - Включая отменённые: IncludeCancelled = true
func (s *Service) ListBookings(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	logMsg := "ListBookings: fetching bookings"
	if req.RoomID != nil {
		logMsg += fmt.Sprintf(", room=%s", *req.RoomID)
	}
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s", req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	s.logger.Info(logMsg)

	filter := domain.BookingsFilter{
		RoomID:           req.RoomID,
		UserID:           req.UserID,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		IncludeCancelled: req.IncludeCancelled,
	}

	if err := applyStatusToFilter(&filter, req.Status); err != nil {
		s.logger.Warn("ListBookings: invalid status=%s", *req.Status)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ListBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBookings - repository error: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	bookings = applyComputedStatusFilter(bookings, req.Status, now)

	s.logger.Info("ListBookings: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings, now), nil
}

// Cancel отменяет бронирование
// Пользователь может отменить только своё будущее активное бронирование,
// администратор - любое будущее активное. Каждый сработавший guard отдаёт
// отдельную ошибку: не найдено, нет прав, уже отменено, уже началось
func (s *Service) Cancel(ctx context.Context, bookingID string, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%s by user=%s", bookingID, req.UserID)

	now := s.timeProvider.Now()

	var cancelled *domain.Booking

	// Чтение с FOR UPDATE и отмена идут в одной транзакции: конкурирующая
	// отмена или редактирование не проскочит между guard-проверками и UPDATE
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				s.logger.Warn("Cancel: booking id=%s not found", bookingID)
				return ErrBookingNotFound
			}
			s.logger.Error("Cancel: repository error for booking id=%s: %v", bookingID, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		if !booking.IsOwnedBy(req.UserID) {
			if err := s.checkAdminAccess(txCtx, req.UserID); err != nil {
				s.logger.Warn("Cancel: access denied for user=%s to cancel booking id=%s", req.UserID, bookingID)
				return ErrAccessDenied
			}
		}

		if booking.IsCancelled() {
			s.logger.Warn("Cancel: booking id=%s is already cancelled", bookingID)
			return ErrAlreadyCancelled
		}

		if !booking.Range.Start().After(now) {
			s.logger.Warn("Cancel: booking id=%s has already started at %s", bookingID, booking.Range.Start().Format(types.CivilTimeFormat))
			return ErrAlreadyStarted
		}

		if err := s.bookingRepo.Cancel(txCtx, bookingID); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				// Статус сменился между чтением и UPDATE - под FOR UPDATE
				// такого быть не должно
				s.logger.Warn("Cancel: booking id=%s not found during cancellation", bookingID)
				return ErrAlreadyCancelled
			}
			s.logger.Error("Cancel: repository error for booking id=%s: %v", bookingID, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		cancelled = booking
		return nil
	})

	if err != nil {
		return err
	}

	s.metrics.BookingsCancelledTotal.Inc()
	s.publishEvent(ctx, events.TypeBookingCancelled, cancelled, now)

	s.logger.Info("Cancel: successfully cancelled booking id=%s", bookingID)
	return nil
}

// Вспомогательные методы

// checkAdminAccess проверяет, что пользователь является администратором
func (s *Service) checkAdminAccess(ctx context.Context, userID string) error {
	employee, err := s.employeeClient.GetEmployee(ctx, userID)
	if err != nil {
		if errors.Is(err, employeeClient.ErrEmployeeNotFound) {
			s.logger.Warn("checkAdminAccess: employee id=%s not found", userID)
			return ErrAccessDenied
		}
		s.logger.Error("checkAdminAccess: failed to get employee id=%s: %v", userID, err)
		return fmt.Errorf("%w: checkAdminAccess - failed to get employee: %v", ErrInternal, err)
	}

	if !employee.IsAdmin() {
		s.logger.Warn("checkAdminAccess: user=%s is not an admin", userID)
		return ErrAccessDenied
	}

	return nil
}

// publishEvent публикует событие жизненного цикла бронирования
// Доставка best-effort: ошибка публикации логируется, бронирование не откатывается
func (s *Service) publishEvent(ctx context.Context, eventType string, booking *domain.Booking, now time.Time) {
	event := events.BookingEvent{
		Type:        eventType,
		BookingID:   booking.ID,
		RoomID:      booking.RoomID,
		RoomName:    booking.RoomName,
		UserID:      booking.BookedByUserID,
		UserName:    booking.BookedByName,
		StartTime:   types.NewCivilTime(booking.Range.Start()),
		EndTime:     types.NewCivilTime(booking.Range.End()),
		Description: booking.Description,
		OccurredAt:  types.NewCivilTime(now),
	}

	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		s.logger.Error("publishEvent: failed to publish %s for booking id=%s: %v", eventType, booking.ID, err)
	}
}

// applyStatusToFilter переводит фильтр статуса на чтении в хранимый статус
// Вычисляемые статусы (completed, upcoming) хранятся как active и
// дофильтровываются после выборки
func applyStatusToFilter(filter *domain.BookingsFilter, status *string) error {
	if status == nil {
		return nil
	}

	if err := models.ValidateStatusFilter(*status); err != nil {
		return err
	}

	switch *status {
	case models.FilterStatusCancelled:
		filter.Status = ptr.Ptr(domain.StatusCancelled)
	default:
		filter.Status = ptr.Ptr(domain.StatusActive)
	}

	return nil
}

// applyComputedStatusFilter дофильтровывает выборку по вычисляемому статусу
func applyComputedStatusFilter(bookings []*domain.Booking, status *string, now time.Time) []*domain.Booking {
	if status == nil {
		return bookings
	}

	var keep func(b *domain.Booking) bool

	switch *status {
	case models.FilterStatusActive:
		keep = func(b *domain.Booking) bool { return b.EffectiveStatus(now) == domain.StatusActive }
	case models.FilterStatusCompleted:
		keep = func(b *domain.Booking) bool { return b.EffectiveStatus(now) == domain.StatusCompleted }
	case models.FilterStatusUpcoming:
		keep = func(b *domain.Booking) bool { return b.IsUpcoming(now) }
	default:
		return bookings
	}

	filtered := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if keep(b) {
			filtered = append(filtered, b)
		}
	}

	return filtered
}
