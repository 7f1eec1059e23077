package room

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-RoomBookingService/pkg/txmanager"
)

var roomColumns = []string{
	"id",
	"name",
	"location",
	"capacity",
	"amenities",
	"description",
	"status",
	"created_at",
	"updated_at",
}

// RoomUpdate частичное обновление комнаты
// nil-поля не изменяются
type RoomUpdate struct {
	Name        *string
	Location    *string
	Capacity    *int
	Amenities   *[]string
	Description *string
	Status      *domain.RoomStatus
}

// Repository репозиторий для работы с комнатами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория комнат
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую комнату
func (r *Repository) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	if room.ID == "" {
		room.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("rooms").
		Columns(
			"id",
			"name",
			"location",
			"capacity",
			"amenities",
			"description",
			"status",
		).
		Values(
			room.ID,
			room.Name,
			room.Location,
			room.Capacity,
			pq.Array(room.Amenities),
			room.Description,
			room.Status,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrRoomNameTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	room.CreatedAt = createdAt.Time
	room.UpdatedAt = updatedAt.Time

	return room, nil
}

// GetByID получает комнату по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(roomColumns...).
		From("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	room, err := scanRoom(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan room: %v", ErrScanRow, err)
	}

	return room, nil
}

// List получает комнаты с фильтрацией по статусу и поиском по имени/локации
// Результат отсортирован по имени - порядок детерминирован
func (r *Repository) List(ctx context.Context, filter domain.RoomsFilter) ([]*domain.Room, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(roomColumns...).
		From("rooms").
		OrderBy("name ASC")

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.Search != nil && *filter.Search != "" {
		pattern := "%" + *filter.Search + "%"
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"location": pattern},
		})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanRooms(rows)
}

// Update обновляет поля комнаты
func (r *Repository) Update(ctx context.Context, id string, upd RoomUpdate) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("rooms").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if upd.Name != nil {
		updateBuilder = updateBuilder.Set("name", *upd.Name)
	}
	if upd.Location != nil {
		updateBuilder = updateBuilder.Set("location", *upd.Location)
	}
	if upd.Capacity != nil {
		updateBuilder = updateBuilder.Set("capacity", *upd.Capacity)
	}
	if upd.Amenities != nil {
		updateBuilder = updateBuilder.Set("amenities", pq.Array(*upd.Amenities))
	}
	if upd.Description != nil {
		updateBuilder = updateBuilder.Set("description", *upd.Description)
	}
	if upd.Status != nil {
		updateBuilder = updateBuilder.Set("status", *upd.Status)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrRoomNameTaken
		}
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrRoomNotFound
	}

	return nil
}

// Delete удаляет комнату (физическое удаление)
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrRoomNotFound
	}

	return nil
}

// scanner общий интерфейс *sql.Row и *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

// scanRoom сканирует одну строку в domain.Room
func scanRoom(row scanner) (*domain.Room, error) {
	var (
		room                 domain.Room
		amenities            pq.StringArray
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&room.ID,
		&room.Name,
		&room.Location,
		&room.Capacity,
		&amenities,
		&room.Description,
		&room.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	room.Amenities = amenities
	room.CreatedAt = createdAt.Time
	room.UpdatedAt = updatedAt.Time

	return &room, nil
}

// scanRooms сканирует результаты запроса в слайс комнат
func scanRooms(rows *sql.Rows) ([]*domain.Room, error) {
	rooms := make([]*domain.Room, 0)

	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanRooms - scan row: %v", ErrScanRow, err)
		}
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRooms - rows error: %v", ErrScanRow, err)
	}

	return rooms, nil
}

// isUniqueViolation проверяет нарушение уникального ограничения (SQLSTATE 23505)
func isUniqueViolation(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == "23505"
	}
	return false
}
