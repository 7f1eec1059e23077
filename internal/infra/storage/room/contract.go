package room

import "github.com/m04kA/SMC-RoomBookingService/pkg/txmanager"

// DBExecutor интерфейс для работы с БД
// Поддерживает *sql.DB и транзакцию из контекста через txmanager.GetExecutor
type DBExecutor = txmanager.Executor
