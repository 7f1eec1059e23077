package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/internal/infra/events"
	bookingRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-RoomBookingService/internal/integrations/employeeservice"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-RoomBookingService/pkg/metrics"
	"github.com/m04kA/SMC-RoomBookingService/pkg/ptr"
)

// Mock структуры

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) Cancel(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockEmployeeClient struct {
	mock.Mock
}

func (m *MockEmployeeClient) GetEmployee(ctx context.Context, employeeID string) (*employeeservice.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*employeeservice.Employee), args.Error(1)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event events.BookingEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// passthroughTxManager выполняет fn без реальной транзакции
type passthroughTxManager struct{}

func (passthroughTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fixedTimeProvider возвращает фиксированный момент времени
type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

// Хелперы

var testNow = time.Date(2025, 10, 15, 12, 0, 0, 0, time.Local)

func newTestService(repo BookingRepository, employee EmployeeServiceClient, publisher EventPublisher, now time.Time) *Service {
	return &Service{
		bookingRepo:    repo,
		employeeClient: employee,
		eventPublisher: publisher,
		txManager:      passthroughTxManager{},
		metrics:        metrics.NewWith(prometheus.NewRegistry(), "test"),
		timeProvider:   fixedTimeProvider{now: now},
		logger:         noopLogger{},
	}
}

func mustRange(t *testing.T, start, end time.Time) domain.TimeRange {
	t.Helper()
	rng, err := domain.NewTimeRange(start, end)
	require.NoError(t, err)
	return rng
}

func futureBooking(t *testing.T, id, userID string) *domain.Booking {
	t.Helper()
	return &domain.Booking{
		ID:             id,
		RoomID:         "room-1",
		RoomName:       "Neptune",
		Range:          mustRange(t, testNow.Add(2*time.Hour), testNow.Add(3*time.Hour)),
		BookedByUserID: userID,
		BookedByName:   "Alice",
		Status:         domain.StatusActive,
	}
}

func admin(id string) *employeeservice.Employee {
	return &employeeservice.Employee{ID: id, Name: "Boss", Role: employeeservice.RoleAdmin}
}

func regularEmployee(id string) *employeeservice.Employee {
	return &employeeservice.Employee{ID: id, Name: "Worker", Role: employeeservice.RoleEmployee}
}

// GetByID

func TestService_GetByID_Owner(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	mockEmployee := &MockEmployeeClient{}
	service := newTestService(mockRepo, mockEmployee, &MockEventPublisher{}, testNow)

	ctx := context.Background()
	booking := futureBooking(t, "b-1", "u-1")
	mockRepo.On("GetByID", ctx, "b-1").Return(booking, nil).Once()

	resp, err := service.GetByID(ctx, "b-1", "u-1")

	assert.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "b-1", resp.ID)
	assert.Equal(t, "Neptune", resp.RoomName)
	assert.Equal(t, "active", resp.Status)
	assert.Equal(t, 60, resp.DurationMinutes)

	mockRepo.AssertExpectations(t)
	mockEmployee.AssertNotCalled(t, "GetEmployee")
}

func TestService_GetByID_NotFound(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	service := newTestService(mockRepo, &MockEmployeeClient{}, &MockEventPublisher{}, testNow)

	ctx := context.Background()
	mockRepo.On("GetByID", ctx, "missing").Return(nil, bookingRepo.ErrBookingNotFound).Once()

	resp, err := service.GetByID(ctx, "missing", "u-1")

	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.Nil(t, resp)
	mockRepo.AssertExpectations(t)
}

func TestService_GetByID_ForeignBooking_NotAdmin(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	mockEmployee := &MockEmployeeClient{}
	service := newTestService(mockRepo, mockEmployee, &MockEventPublisher{}, testNow)

	ctx := context.Background()
	booking := futureBooking(t, "b-1", "u-1")
	mockRepo.On("GetByID", ctx, "b-1").Return(booking, nil).Once()
	mockEmployee.On("GetEmployee", ctx, "u-2").Return(regularEmployee("u-2"), nil).Once()

	resp, err := service.GetByID(ctx, "b-1", "u-2")

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Nil(t, resp)
	mockRepo.AssertExpectations(t)
	mockEmployee.AssertExpectations(t)
}

func TestService_GetByID_ForeignBooking_Admin(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	mockEmployee := &MockEmployeeClient{}
	service := newTestService(mockRepo, mockEmployee, &MockEventPublisher{}, testNow)

	ctx := context.Background()
	booking := futureBooking(t, "b-1", "u-1")
	mockRepo.On("GetByID", ctx, "b-1").Return(booking, nil).Once()
	mockEmployee.On("GetEmployee", ctx, "boss").Return(admin("boss"), nil).Once()

	resp, err := service.GetByID(ctx, "b-1", "boss")

	assert.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "b-1", resp.ID)
	mockEmployee.AssertExpectations(t)
}

func TestService_GetByID_CompletedStatusComputed(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	service := newTestService(mockRepo, &MockEmployeeClient{}, &MockEventPublisher{}, testNow)

	ctx := context.Background()
	past := futureBooking(t, "b-1", "u-1")
	past.Range = mustRange(t, testNow.Add(-3*time.Hour), testNow.Add(-2*time.Hour))
	mockRepo.On("GetByID", ctx, "b-1").Return(past, nil).Once()

	resp, err := service.GetByID(ctx, "b-1", "u-1")

	assert.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "completed", resp.Status)
}

// GetUserBookings

func TestService_GetUserBookings_Owner_ExcludesCancelledByDefault(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	service := newTestService(mockRepo, &MockEmployeeClient{}, &MockEventPublisher{}, testNow)

	ctx := context.Background()
	expectedFilter := domain.BookingsFilter{
		UserID:           ptr.Ptr("u-1"),
		IncludeCancelled: false,
	}
	mockRepo.On("GetWithFilter", ctx, expectedFilter).
		Return([]*domain.Booking{futureBooking(t, "b-1", "u-1")}, nil).Once()

	resp, err := service.GetUserBookings(ctx, &models.GetUserBookingsRequest{
		UserID:      "u-1",
		RequesterID: "u-1",
	})

	assert.NoError(t, err)
	require.NotNil(t, resp)
	assert.Len(t, resp.Bookings, 1)
	mockRepo.AssertExpectations(t)
}

func TestService_GetUserBookings_ForeignHistory_RequiresAdmin(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	mockEmployee := &MockEmployeeClient{}
	service := newTestService(mockRepo, mockEmployee, &MockEventPublisher{}, testNow)

	ctx := context.Background()
	mockEmployee.On("GetEmployee", ctx, "u-2").Return(regularEmployee("u-2"), nil).Once()

	resp, err := service.GetUserBookings(ctx, &models.GetUserBookingsRequest{
		UserID:      "u-1",
		RequesterID: "u-2",
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Nil(t, resp)
	mockRepo.AssertNotCalled(t, "GetWithFilter")
}

func TestService_GetUserBookings_CompletedFilter(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	service := newTestService(mockRepo, &MockEmployeeClient{}, &MockEventPublisher{}, testNow)

	ctx := context.Background()

	upcoming := futureBooking(t, "b-upcoming", "u-1")
	finished := futureBooking(t, "b-finished", "u-1")
	finished.Range = mustRange(t, testNow.Add(-2*time.Hour), testNow.Add(-1*time.Hour))

	// Вычисляемый статус completed хранится как active
	expectedFilter := domain.BookingsFilter{
		UserID: ptr.Ptr("u-1"),
		Status: ptr.Ptr(domain.StatusActive),
	}
	mockRepo.On("GetWithFilter", ctx, expectedFilter).
		Return([]*domain.Booking{upcoming, finished}, nil).Once()

	resp, err := service.GetUserBookings(ctx, &models.GetUserBookingsRequest{
		UserID:      "u-1",
		RequesterID: "u-1",
		Status:      ptr.Ptr(models.FilterStatusCompleted),
	})

	assert.NoError(t, err)
	require.NotNil(t, resp)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "b-finished", resp.Bookings[0].ID)
	assert.Equal(t, "completed", resp.Bookings[0].Status)
}

func TestService_GetUserBookings_InvalidStatus(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	service := newTestService(mockRepo, &MockEmployeeClient{}, &MockEventPublisher{}, testNow)

	resp, err := service.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID:      "u-1",
		RequesterID: "u-1",
		Status:      ptr.Ptr("confirmed"),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, resp)
	mockRepo.AssertNotCalled(t, "GetWithFilter")
}

// ListBookings

func TestService_ListBookings_UpcomingFilter(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	service := newTestService(mockRepo, &MockEmployeeClient{}, &MockEventPublisher{}, testNow)

	ctx := context.Background()

	upcoming := futureBooking(t, "b-upcoming", "u-1")
	inProgress := futureBooking(t, "b-in-progress", "u-2")
	inProgress.Range = mustRange(t, testNow.Add(-30*time.Minute), testNow.Add(30*time.Minute))
	finished := futureBooking(t, "b-finished", "u-3")
	finished.Range = mustRange(t, testNow.Add(-2*time.Hour), testNow.Add(-1*time.Hour))

	mockRepo.On("GetWithFilter", ctx, mock.AnythingOfType("domain.BookingsFilter")).
		Return([]*domain.Booking{upcoming, inProgress, finished}, nil).Once()

	resp, err := service.ListBookings(ctx, &models.ListBookingsRequest{
		Status: ptr.Ptr(models.FilterStatusUpcoming),
	})

	assert.NoError(t, err)
	require.NotNil(t, resp)
	// Идущая встреча ещё не завершилась - она тоже upcoming
	require.Len(t, resp.Bookings, 2)
	assert.Equal(t, "b-upcoming", resp.Bookings[0].ID)
	assert.Equal(t, "b-in-progress", resp.Bookings[1].ID)
}

func TestService_ListBookings_RoomFilterPassedThrough(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	service := newTestService(mockRepo, &MockEmployeeClient{}, &MockEventPublisher{}, testNow)

	ctx := context.Background()
	expectedFilter := domain.BookingsFilter{
		RoomID:           ptr.Ptr("room-1"),
		IncludeCancelled: true,
	}
	mockRepo.On("GetWithFilter", ctx, expectedFilter).Return([]*domain.Booking{}, nil).Once()

	resp, err := service.ListBookings(ctx, &models.ListBookingsRequest{
		RoomID:           ptr.Ptr("room-1"),
		IncludeCancelled: true,
	})

	assert.NoError(t, err)
	require.NotNil(t, resp)
	assert.Empty(t, resp.Bookings)
	mockRepo.AssertExpectations(t)
}

// Cancel

func TestService_Cancel_Success(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	mockPublisher := &MockEventPublisher{}
	service := newTestService(mockRepo, &MockEmployeeClient{}, mockPublisher, testNow)

	ctx := context.Background()
	booking := futureBooking(t, "b-1", "u-1")
	mockRepo.On("GetByID", ctx, "b-1").Return(booking, nil).Once()
	mockRepo.On("Cancel", ctx, "b-1").Return(nil).Once()
	mockPublisher.On("Publish", ctx, mock.MatchedBy(func(e events.BookingEvent) bool {
		return e.Type == events.TypeBookingCancelled && e.BookingID == "b-1"
	})).Return(nil).Once()

	err := service.Cancel(ctx, "b-1", &models.CancelBookingRequest{UserID: "u-1"})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestService_Cancel_AlreadyCancelled(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	service := newTestService(mockRepo, &MockEmployeeClient{}, &MockEventPublisher{}, testNow)

	ctx := context.Background()
	booking := futureBooking(t, "b-1", "u-1")
	booking.Status = domain.StatusCancelled
	mockRepo.On("GetByID", ctx, "b-1").Return(booking, nil).Once()

	err := service.Cancel(ctx, "b-1", &models.CancelBookingRequest{UserID: "u-1"})

	assert.ErrorIs(t, err, ErrAlreadyCancelled)
	mockRepo.AssertNotCalled(t, "Cancel")
}

func TestService_Cancel_AlreadyStarted(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	service := newTestService(mockRepo, &MockEmployeeClient{}, &MockEventPublisher{}, testNow)

	ctx := context.Background()
	booking := futureBooking(t, "b-1", "u-1")
	booking.Range = mustRange(t, testNow.Add(-10*time.Minute), testNow.Add(50*time.Minute))
	mockRepo.On("GetByID", ctx, "b-1").Return(booking, nil).Once()

	err := service.Cancel(ctx, "b-1", &models.CancelBookingRequest{UserID: "u-1"})

	assert.ErrorIs(t, err, ErrAlreadyStarted)
	mockRepo.AssertNotCalled(t, "Cancel")
}

func TestService_Cancel_StartsExactlyNow(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	service := newTestService(mockRepo, &MockEmployeeClient{}, &MockEventPublisher{}, testNow)

	ctx := context.Background()
	booking := futureBooking(t, "b-1", "u-1")
	booking.Range = mustRange(t, testNow, testNow.Add(time.Hour))
	mockRepo.On("GetByID", ctx, "b-1").Return(booking, nil).Once()

	err := service.Cancel(ctx, "b-1", &models.CancelBookingRequest{UserID: "u-1"})

	// start == now уже не отменяется: guard требует строго будущего начала
	assert.ErrorIs(t, err, ErrAlreadyStarted)
	mockRepo.AssertNotCalled(t, "Cancel")
}

func TestService_Cancel_ForeignBooking_NotAdmin(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	mockEmployee := &MockEmployeeClient{}
	service := newTestService(mockRepo, mockEmployee, &MockEventPublisher{}, testNow)

	ctx := context.Background()
	booking := futureBooking(t, "b-1", "u-1")
	mockRepo.On("GetByID", ctx, "b-1").Return(booking, nil).Once()
	mockEmployee.On("GetEmployee", ctx, "u-2").Return(regularEmployee("u-2"), nil).Once()

	err := service.Cancel(ctx, "b-1", &models.CancelBookingRequest{UserID: "u-2"})

	assert.ErrorIs(t, err, ErrAccessDenied)
	mockRepo.AssertNotCalled(t, "Cancel")
}

func TestService_Cancel_ForeignBooking_Admin(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	mockEmployee := &MockEmployeeClient{}
	mockPublisher := &MockEventPublisher{}
	service := newTestService(mockRepo, mockEmployee, mockPublisher, testNow)

	ctx := context.Background()
	booking := futureBooking(t, "b-1", "u-1")
	mockRepo.On("GetByID", ctx, "b-1").Return(booking, nil).Once()
	mockEmployee.On("GetEmployee", ctx, "boss").Return(admin("boss"), nil).Once()
	mockRepo.On("Cancel", ctx, "b-1").Return(nil).Once()
	mockPublisher.On("Publish", ctx, mock.Anything).Return(nil).Once()

	err := service.Cancel(ctx, "b-1", &models.CancelBookingRequest{UserID: "boss"})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockEmployee.AssertExpectations(t)
}

func TestService_Cancel_NotFound(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	service := newTestService(mockRepo, &MockEmployeeClient{}, &MockEventPublisher{}, testNow)

	ctx := context.Background()
	mockRepo.On("GetByID", ctx, "missing").Return(nil, bookingRepo.ErrBookingNotFound).Once()

	err := service.Cancel(ctx, "missing", &models.CancelBookingRequest{UserID: "u-1"})

	assert.ErrorIs(t, err, ErrBookingNotFound)
	mockRepo.AssertNotCalled(t, "Cancel")
}

func TestService_Cancel_PublishFailureDoesNotFailCancel(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	mockPublisher := &MockEventPublisher{}
	service := newTestService(mockRepo, &MockEmployeeClient{}, mockPublisher, testNow)

	ctx := context.Background()
	booking := futureBooking(t, "b-1", "u-1")
	mockRepo.On("GetByID", ctx, "b-1").Return(booking, nil).Once()
	mockRepo.On("Cancel", ctx, "b-1").Return(nil).Once()
	mockPublisher.On("Publish", ctx, mock.Anything).Return(errors.New("kafka down")).Once()

	err := service.Cancel(ctx, "b-1", &models.CancelBookingRequest{UserID: "u-1"})

	assert.NoError(t, err)
	mockPublisher.AssertExpectations(t)
}
