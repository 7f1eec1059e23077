package rooms

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	roomRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/room"
	employeeClient "github.com/m04kA/SMC-RoomBookingService/internal/integrations/employeeservice"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/rooms/models"
)

// Service сервис для работы с комнатами
type Service struct {
	roomRepo       RoomRepository
	roomCache      RoomCache
	employeeClient EmployeeServiceClient
	logger         Logger
}

// NewService создает новый экземпляр сервиса комнат
func NewService(
	roomRepo RoomRepository,
	roomCache RoomCache,
	employeeClient EmployeeServiceClient,
	logger Logger,
) *Service {
	return &Service{
		roomRepo:       roomRepo,
		roomCache:      roomCache,
		employeeClient: employeeClient,
		logger:         logger,
	}
}

// List получает список комнат
// Выборка без фильтров идёт через кеш (cache-aside); фильтрованные выборки
// ходят в БД напрямую, чтобы не плодить ключи под каждую комбинацию фильтров
func (s *Service) List(ctx context.Context, req *models.ListRoomsRequest) (*models.RoomListResponse, error) {
	s.logger.Info("List: fetching rooms")

	if req.Status == nil && req.Search == nil {
		rooms, err := s.listAllCached(ctx)
		if err != nil {
			return nil, err
		}
		return models.FromDomainRoomList(rooms), nil
	}

	filter := domain.RoomsFilter{Search: req.Search}
	if req.Status != nil {
		status, err := models.ToDomainRoomStatus(*req.Status)
		if err != nil {
			s.logger.Warn("List: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	rooms, err := s.roomRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d rooms", len(rooms))
	return models.FromDomainRoomList(rooms), nil
}

// GetAllRooms получает все комнаты через кеш
// Используется поиском доступности - там нужны domain модели целиком
func (s *Service) GetAllRooms(ctx context.Context) ([]*domain.Room, error) {
	return s.listAllCached(ctx)
}

// GetByID получает комнату по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.RoomResponse, error) {
	s.logger.Info("GetByID: fetching room id=%s", id)

	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("GetByID: room id=%s not found", id)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetByID: repository error for room id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRoom(room), nil
}

// Create создает новую комнату
// Доступно только администраторам
func (s *Service) Create(ctx context.Context, req *models.CreateRoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("Create: creating room name=%s by user=%s", req.Name, req.UserID)

	if err := s.checkAdminAccess(ctx, req.UserID); err != nil {
		s.logger.Warn("Create: access denied for user=%s", req.UserID)
		return nil, err
	}

	status := domain.RoomStatusAvailable
	if req.Status != nil {
		converted, err := models.ToDomainRoomStatus(*req.Status)
		if err != nil {
			s.logger.Warn("Create: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		status = converted
	}

	room := &domain.Room{
		Name:        strings.TrimSpace(req.Name),
		Location:    strings.TrimSpace(req.Location),
		Capacity:    req.Capacity,
		Amenities:   req.Amenities,
		Description: req.Description,
		Status:      status,
	}

	if err := validateRoomData(room); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.roomRepo.Create(ctx, room)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNameTaken) {
			s.logger.Warn("Create: room name=%s already taken", room.Name)
			return nil, ErrRoomNameTaken
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.invalidateCache(ctx)

	s.logger.Info("Create: successfully created room id=%s", created.ID)
	return models.FromDomainRoom(created), nil
}

// Update обновляет комнату, включая административный статус
// Доступно только администраторам. Частичное обновление - nil-поля не меняются
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateRoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("Update: updating room id=%s by user=%s", id, req.UserID)

	if err := s.checkAdminAccess(ctx, req.UserID); err != nil {
		s.logger.Warn("Update: access denied for user=%s", req.UserID)
		return nil, err
	}

	upd := roomRepo.RoomUpdate{
		Name:        req.Name,
		Location:    req.Location,
		Capacity:    req.Capacity,
		Amenities:   req.Amenities,
		Description: req.Description,
	}

	if req.Status != nil {
		status, err := models.ToDomainRoomStatus(*req.Status)
		if err != nil {
			s.logger.Warn("Update: invalid status=%s for room id=%s", *req.Status, id)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		upd.Status = &status
	}

	if err := validateRoomUpdate(upd); err != nil {
		s.logger.Warn("Update: validation failed for room id=%s: %v", id, err)
		return nil, err
	}

	if err := s.roomRepo.Update(ctx, id, upd); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("Update: room id=%s not found", id)
			return nil, ErrRoomNotFound
		}
		if errors.Is(err, roomRepo.ErrRoomNameTaken) {
			s.logger.Warn("Update: room name already taken for room id=%s", id)
			return nil, ErrRoomNameTaken
		}
		s.logger.Error("Update: repository error for room id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.invalidateCache(ctx)

	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Update: failed to reload room id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - failed to reload room: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated room id=%s", id)
	return models.FromDomainRoom(room), nil
}

// Delete удаляет комнату
// Доступно только администраторам
func (s *Service) Delete(ctx context.Context, id string, userID string) error {
	s.logger.Info("Delete: deleting room id=%s by user=%s", id, userID)

	if err := s.checkAdminAccess(ctx, userID); err != nil {
		s.logger.Warn("Delete: access denied for user=%s", userID)
		return err
	}

	if err := s.roomRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("Delete: room id=%s not found", id)
			return ErrRoomNotFound
		}
		s.logger.Error("Delete: repository error for room id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.invalidateCache(ctx)

	s.logger.Info("Delete: successfully deleted room id=%s", id)
	return nil
}

// Вспомогательные методы

// listAllCached читает полный список комнат через кеш (cache-aside)
func (s *Service) listAllCached(ctx context.Context) ([]*domain.Room, error) {
	cached, err := s.roomCache.GetRooms(ctx)
	if err != nil {
		// Кеш недоступен - идём в БД
		s.logger.Error("listAllCached: cache read failed: %v", err)
	}
	if cached != nil {
		s.logger.Info("listAllCached: cache hit, %d rooms", len(cached))
		return cached, nil
	}

	rooms, err := s.roomRepo.List(ctx, domain.RoomsFilter{})
	if err != nil {
		s.logger.Error("listAllCached: repository error: %v", err)
		return nil, fmt.Errorf("%w: listAllCached - repository error: %v", ErrInternal, err)
	}

	if err := s.roomCache.SetRooms(ctx, rooms); err != nil {
		s.logger.Error("listAllCached: cache write failed: %v", err)
	}

	return rooms, nil
}

// invalidateCache сбрасывает кеш комнат после записи
func (s *Service) invalidateCache(ctx context.Context) {
	if err := s.roomCache.InvalidateRooms(ctx); err != nil {
		s.logger.Error("invalidateCache: failed to invalidate rooms cache: %v", err)
	}
}

// checkAdminAccess проверяет, что пользователь является администратором
func (s *Service) checkAdminAccess(ctx context.Context, userID string) error {
	employee, err := s.employeeClient.GetEmployee(ctx, userID)
	if err != nil {
		if errors.Is(err, employeeClient.ErrEmployeeNotFound) {
			return ErrAccessDenied
		}
		s.logger.Error("checkAdminAccess: failed to get employee id=%s: %v", userID, err)
		return fmt.Errorf("%w: checkAdminAccess - failed to get employee: %v", ErrInternal, err)
	}

	if !employee.IsAdmin() {
		return ErrAccessDenied
	}

	return nil
}

// validateRoomData валидирует данные новой комнаты
func validateRoomData(room *domain.Room) error {
	if room.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(room.Name) > domain.MaxRoomNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxRoomNameLength)
	}
	if room.Capacity < domain.MinRoomCapacity || room.Capacity > domain.MaxRoomCapacity {
		return fmt.Errorf("%w: capacity must be between %d and %d", ErrInvalidInput, domain.MinRoomCapacity, domain.MaxRoomCapacity)
	}
	return nil
}

// validateRoomUpdate валидирует частичное обновление комнаты
func validateRoomUpdate(upd roomRepo.RoomUpdate) error {
	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
		}
		if len(name) > domain.MaxRoomNameLength {
			return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxRoomNameLength)
		}
	}
	if upd.Capacity != nil && (*upd.Capacity < domain.MinRoomCapacity || *upd.Capacity > domain.MaxRoomCapacity) {
		return fmt.Errorf("%w: capacity must be between %d and %d", ErrInvalidInput, domain.MinRoomCapacity, domain.MaxRoomCapacity)
	}
	return nil
}
