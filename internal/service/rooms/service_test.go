package rooms

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	roomRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/room"
	"github.com/m04kA/SMC-RoomBookingService/internal/integrations/employeeservice"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/rooms/models"
	"github.com/m04kA/SMC-RoomBookingService/pkg/ptr"
)

// Mock структуры

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	args := m.Called(ctx, room)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomRepository) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomRepository) List(ctx context.Context, filter domain.RoomsFilter) ([]*domain.Room, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Room), args.Error(1)
}

func (m *MockRoomRepository) Update(ctx context.Context, id string, upd roomRepo.RoomUpdate) error {
	args := m.Called(ctx, id, upd)
	return args.Error(0)
}

func (m *MockRoomRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockRoomCache struct {
	mock.Mock
}

func (m *MockRoomCache) GetRooms(ctx context.Context) ([]*domain.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Room), args.Error(1)
}

func (m *MockRoomCache) SetRooms(ctx context.Context, rooms []*domain.Room) error {
	args := m.Called(ctx, rooms)
	return args.Error(0)
}

func (m *MockRoomCache) InvalidateRooms(ctx context.Context) error {
	args := m.Called(ctx)
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

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

// Хелперы

func newTestService(repo RoomRepository, cache RoomCache, employee EmployeeServiceClient) *Service {
	return &Service{
		roomRepo:       repo,
		roomCache:      cache,
		employeeClient: employee,
		logger:         noopLogger{},
	}
}

func admin(id string) *employeeservice.Employee {
	return &employeeservice.Employee{ID: id, Name: "Boss", Role: employeeservice.RoleAdmin}
}

func regularEmployee(id string) *employeeservice.Employee {
	return &employeeservice.Employee{ID: id, Name: "Worker", Role: employeeservice.RoleEmployee}
}

func sampleRoom(id, name string) *domain.Room {
	return &domain.Room{
		ID:       id,
		Name:     name,
		Location: "Floor 3",
		Capacity: 8,
		Status:   domain.RoomStatusAvailable,
	}
}

// List

func TestService_List_CacheHit(t *testing.T) {
	mockRepo := &MockRoomRepository{}
	mockCache := &MockRoomCache{}
	service := newTestService(mockRepo, mockCache, &MockEmployeeClient{})

	ctx := context.Background()
	cached := []*domain.Room{sampleRoom("r-1", "Neptune")}
	mockCache.On("GetRooms", ctx).Return(cached, nil).Once()

	resp, err := service.List(ctx, &models.ListRoomsRequest{})

	assert.NoError(t, err)
	require.NotNil(t, resp)
	require.Len(t, resp.Rooms, 1)
	assert.Equal(t, "Neptune", resp.Rooms[0].Name)

	mockCache.AssertExpectations(t)
	mockRepo.AssertNotCalled(t, "List")
}

func TestService_List_CacheMiss_PopulatesCache(t *testing.T) {
	mockRepo := &MockRoomRepository{}
	mockCache := &MockRoomCache{}
	service := newTestService(mockRepo, mockCache, &MockEmployeeClient{})

	ctx := context.Background()
	rooms := []*domain.Room{sampleRoom("r-1", "Neptune"), sampleRoom("r-2", "Saturn")}
	mockCache.On("GetRooms", ctx).Return(nil, nil).Once()
	mockRepo.On("List", ctx, domain.RoomsFilter{}).Return(rooms, nil).Once()
	mockCache.On("SetRooms", ctx, rooms).Return(nil).Once()

	resp, err := service.List(ctx, &models.ListRoomsRequest{})

	assert.NoError(t, err)
	require.NotNil(t, resp)
	assert.Len(t, resp.Rooms, 2)

	mockCache.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestService_List_FilteredBypassesCache(t *testing.T) {
	mockRepo := &MockRoomRepository{}
	mockCache := &MockRoomCache{}
	service := newTestService(mockRepo, mockCache, &MockEmployeeClient{})

	ctx := context.Background()
	expectedFilter := domain.RoomsFilter{Status: ptr.Ptr(domain.RoomStatusMaintenance)}
	mockRepo.On("List", ctx, expectedFilter).Return([]*domain.Room{}, nil).Once()

	resp, err := service.List(ctx, &models.ListRoomsRequest{Status: ptr.Ptr("maintenance")})

	assert.NoError(t, err)
	require.NotNil(t, resp)
	assert.Empty(t, resp.Rooms)

	mockRepo.AssertExpectations(t)
	mockCache.AssertNotCalled(t, "GetRooms")
}

func TestService_List_InvalidStatus(t *testing.T) {
	service := newTestService(&MockRoomRepository{}, &MockRoomCache{}, &MockEmployeeClient{})

	resp, err := service.List(context.Background(), &models.ListRoomsRequest{Status: ptr.Ptr("broken")})

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, resp)
}

func TestService_List_CacheFailureFallsBackToRepo(t *testing.T) {
	mockRepo := &MockRoomRepository{}
	mockCache := &MockRoomCache{}
	service := newTestService(mockRepo, mockCache, &MockEmployeeClient{})

	ctx := context.Background()
	rooms := []*domain.Room{sampleRoom("r-1", "Neptune")}
	mockCache.On("GetRooms", ctx).Return(nil, errors.New("redis down")).Once()
	mockRepo.On("List", ctx, domain.RoomsFilter{}).Return(rooms, nil).Once()
	mockCache.On("SetRooms", ctx, rooms).Return(errors.New("redis down")).Once()

	resp, err := service.List(ctx, &models.ListRoomsRequest{})

	assert.NoError(t, err)
	require.NotNil(t, resp)
	assert.Len(t, resp.Rooms, 1)
}

// Create

func TestService_Create_Admin(t *testing.T) {
	mockRepo := &MockRoomRepository{}
	mockCache := &MockRoomCache{}
	mockEmployee := &MockEmployeeClient{}
	service := newTestService(mockRepo, mockCache, mockEmployee)

	ctx := context.Background()
	mockEmployee.On("GetEmployee", ctx, "boss").Return(admin("boss"), nil).Once()
	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Room")).
		Return(sampleRoom("r-new", "Pluto"), nil).Once()
	mockCache.On("InvalidateRooms", ctx).Return(nil).Once()

	resp, err := service.Create(ctx, &models.CreateRoomRequest{
		UserID:   "boss",
		Name:     "Pluto",
		Location: "Floor 1",
		Capacity: 4,
	})

	assert.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "r-new", resp.ID)

	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestService_Create_NotAdmin(t *testing.T) {
	mockRepo := &MockRoomRepository{}
	mockEmployee := &MockEmployeeClient{}
	service := newTestService(mockRepo, &MockRoomCache{}, mockEmployee)

	ctx := context.Background()
	mockEmployee.On("GetEmployee", ctx, "u-1").Return(regularEmployee("u-1"), nil).Once()

	resp, err := service.Create(ctx, &models.CreateRoomRequest{
		UserID:   "u-1",
		Name:     "Pluto",
		Capacity: 4,
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Nil(t, resp)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestService_Create_ValidationErrors(t *testing.T) {
	mockEmployee := &MockEmployeeClient{}
	service := newTestService(&MockRoomRepository{}, &MockRoomCache{}, mockEmployee)

	ctx := context.Background()
	mockEmployee.On("GetEmployee", ctx, "boss").Return(admin("boss"), nil)

	testCases := []struct {
		name string
		req  *models.CreateRoomRequest
	}{
		{
			name: "Empty name",
			req:  &models.CreateRoomRequest{UserID: "boss", Name: "   ", Capacity: 4},
		},
		{
			name: "Zero capacity",
			req:  &models.CreateRoomRequest{UserID: "boss", Name: "Pluto", Capacity: 0},
		},
		{
			name: "Capacity above limit",
			req:  &models.CreateRoomRequest{UserID: "boss", Name: "Pluto", Capacity: 1000},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := service.Create(ctx, tc.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, resp)
		})
	}
}

func TestService_Create_NameTaken(t *testing.T) {
	mockRepo := &MockRoomRepository{}
	mockEmployee := &MockEmployeeClient{}
	service := newTestService(mockRepo, &MockRoomCache{}, mockEmployee)

	ctx := context.Background()
	mockEmployee.On("GetEmployee", ctx, "boss").Return(admin("boss"), nil).Once()
	mockRepo.On("Create", ctx, mock.Anything).Return(nil, roomRepo.ErrRoomNameTaken).Once()

	resp, err := service.Create(ctx, &models.CreateRoomRequest{
		UserID:   "boss",
		Name:     "Neptune",
		Capacity: 8,
	})

	assert.ErrorIs(t, err, ErrRoomNameTaken)
	assert.Nil(t, resp)
}

// Update

func TestService_Update_StatusToMaintenance(t *testing.T) {
	mockRepo := &MockRoomRepository{}
	mockCache := &MockRoomCache{}
	mockEmployee := &MockEmployeeClient{}
	service := newTestService(mockRepo, mockCache, mockEmployee)

	ctx := context.Background()
	updated := sampleRoom("r-1", "Neptune")
	updated.Status = domain.RoomStatusMaintenance

	mockEmployee.On("GetEmployee", ctx, "boss").Return(admin("boss"), nil).Once()
	mockRepo.On("Update", ctx, "r-1", mock.MatchedBy(func(upd roomRepo.RoomUpdate) bool {
		return upd.Status != nil && *upd.Status == domain.RoomStatusMaintenance
	})).Return(nil).Once()
	mockCache.On("InvalidateRooms", ctx).Return(nil).Once()
	mockRepo.On("GetByID", ctx, "r-1").Return(updated, nil).Once()

	resp, err := service.Update(ctx, "r-1", &models.UpdateRoomRequest{
		UserID: "boss",
		Status: ptr.Ptr("maintenance"),
	})

	assert.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "maintenance", resp.Status)

	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestService_Update_NotFound(t *testing.T) {
	mockRepo := &MockRoomRepository{}
	mockEmployee := &MockEmployeeClient{}
	service := newTestService(mockRepo, &MockRoomCache{}, mockEmployee)

	ctx := context.Background()
	mockEmployee.On("GetEmployee", ctx, "boss").Return(admin("boss"), nil).Once()
	mockRepo.On("Update", ctx, "missing", mock.Anything).Return(roomRepo.ErrRoomNotFound).Once()

	resp, err := service.Update(ctx, "missing", &models.UpdateRoomRequest{
		UserID:   "boss",
		Capacity: ptr.Ptr(10),
	})

	assert.ErrorIs(t, err, ErrRoomNotFound)
	assert.Nil(t, resp)
}

// Delete

func TestService_Delete_Admin(t *testing.T) {
	mockRepo := &MockRoomRepository{}
	mockCache := &MockRoomCache{}
	mockEmployee := &MockEmployeeClient{}
	service := newTestService(mockRepo, mockCache, mockEmployee)

	ctx := context.Background()
	mockEmployee.On("GetEmployee", ctx, "boss").Return(admin("boss"), nil).Once()
	mockRepo.On("Delete", ctx, "r-1").Return(nil).Once()
	mockCache.On("InvalidateRooms", ctx).Return(nil).Once()

	err := service.Delete(ctx, "r-1", "boss")

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestService_Delete_NotAdmin(t *testing.T) {
	mockRepo := &MockRoomRepository{}
	mockEmployee := &MockEmployeeClient{}
	service := newTestService(mockRepo, &MockRoomCache{}, mockEmployee)

	ctx := context.Background()
	mockEmployee.On("GetEmployee", ctx, "u-1").Return(regularEmployee("u-1"), nil).Once()

	err := service.Delete(ctx, "r-1", "u-1")

	assert.ErrorIs(t, err, ErrAccessDenied)
	mockRepo.AssertNotCalled(t, "Delete")
}
