package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/check_availability"
	createBookingHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/create_booking"
	createRoomHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/create_room"
	deleteRoomHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/delete_room"
	getBookingHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/get_booking"
	getUserBookingsHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/get_user_bookings"
	listBookingsHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/list_bookings"
	listRoomsHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/list_rooms"
	updateBookingHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/update_booking"
	updateRoomHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/update_room"
	"github.com/m04kA/SMC-RoomBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-RoomBookingService/internal/config"
	"github.com/m04kA/SMC-RoomBookingService/internal/infra/cache"
	"github.com/m04kA/SMC-RoomBookingService/internal/infra/events"
	"github.com/m04kA/SMC-RoomBookingService/internal/infra/migrate"
	bookingRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/room"
	employeeServiceClient "github.com/m04kA/SMC-RoomBookingService/internal/integrations/employeeservice"
	bookingsService "github.com/m04kA/SMC-RoomBookingService/internal/service/bookings"
	roomsService "github.com/m04kA/SMC-RoomBookingService/internal/service/rooms"
	checkAvailabilityUC "github.com/m04kA/SMC-RoomBookingService/internal/usecase/check_availability"
	createBookingUC "github.com/m04kA/SMC-RoomBookingService/internal/usecase/create_booking"
	updateBookingUC "github.com/m04kA/SMC-RoomBookingService/internal/usecase/update_booking"
	"github.com/m04kA/SMC-RoomBookingService/pkg/logger"
	"github.com/m04kA/SMC-RoomBookingService/pkg/metrics"
	"github.com/m04kA/SMC-RoomBookingService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-RoomBookingService...")
	log.Info("Configuration loaded from config.toml")

	// Метрики создаются всегда, endpoint и middleware включаются конфигом
	metricsCollector := metrics.New(cfg.Metrics.ServiceName)

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Применяем миграции
	if err := migrate.Up(context.Background(), db); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	log.Info("Database migrations applied")

	// Redis-кеш списка комнат (опционально)
	var roomCache roomsService.RoomCache = cache.NoopRoomCache{}
	if cfg.Redis.Enabled {
		redisCache := cache.NewRoomCache(
			cfg.Redis.Addr,
			cfg.Redis.Password,
			cfg.Redis.DB,
			time.Duration(cfg.Redis.RoomsTTL)*time.Second,
		)
		defer redisCache.Close()

		if err := redisCache.Ping(context.Background()); err != nil {
			// Кеш не критичен - сервис работает напрямую с БД
			log.Warn("Redis unavailable, falling back to direct DB reads: %v", err)
		} else {
			log.Info("Connected to Redis at %s", cfg.Redis.Addr)
		}
		roomCache = redisCache
	}

	// Kafka producer событий бронирований (опционально)
	var eventPublisher bookingsService.EventPublisher = events.NopPublisher{}
	if cfg.Kafka.Enabled {
		producer := events.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer producer.Close()
		eventPublisher = producer
		log.Info("Kafka producer initialized (brokers=%v, topic=%s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	}

	// Клиент EmployeeService
	employeeClient := employeeServiceClient.NewClient(
		cfg.EmployeeService.URL,
		time.Duration(cfg.EmployeeService.Timeout)*time.Second,
		log,
	)
	log.Info("EmployeeService client initialized (url=%s, timeout=%ds)",
		cfg.EmployeeService.URL, cfg.EmployeeService.Timeout)

	// Бизнес-правила бронирования
	policy, err := cfg.Booking.Policy()
	if err != nil {
		log.Fatal("Invalid booking policy: %v", err)
	}

	// Репозитории и транзакции
	txMgr := txmanager.NewTransactionManager(db)
	bookingRepository := bookingRepo.NewRepository(db)
	roomRepository := roomRepo.NewRepository(db)

	// Сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		employeeClient,
		eventPublisher,
		txMgr,
		metricsCollector,
		log,
	)
	roomSvc := roomsService.NewService(
		roomRepository,
		roomCache,
		employeeClient,
		log,
	)

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		roomRepository,
		employeeClient,
		eventPublisher,
		txMgr,
		policy,
		metricsCollector,
		log,
	)
	updateBookingUseCase := updateBookingUC.NewUseCase(
		bookingRepository,
		employeeClient,
		eventPublisher,
		txMgr,
		policy,
		metricsCollector,
		log,
	)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		roomSvc,
		bookingRepository,
		log,
	)

	// Handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	listRooms := listRoomsHandler.NewHandler(roomSvc, log)
	createRoom := createRoomHandler.NewHandler(roomSvc, log)
	updateRoom := updateRoomHandler.NewHandler(roomSvc, log)
	deleteRoom := deleteRoomHandler.NewHandler(roomSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Все маршруты API требуют X-User-ID: аутентификацию выполняет шлюз
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth)

	// --- Комнаты ---
	api.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms", createRoom.Handle).Methods(http.MethodPost)
	api.HandleFunc("/rooms/check-availability", checkAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}", updateRoom.Handle).Methods(http.MethodPut)
	api.HandleFunc("/rooms/{roomId}", deleteRoom.Handle).Methods(http.MethodDelete)

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)
	api.HandleFunc("/bookings/{bookingId}", cancelBooking.Handle).Methods(http.MethodDelete)

	// --- История пользователя ---
	api.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
