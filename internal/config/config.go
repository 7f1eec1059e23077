package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// Config конфигурация сервиса
type Config struct {
	Server          ServerConfig          `toml:"server"`
	Database        DatabaseConfig        `toml:"database"`
	Redis           RedisConfig           `toml:"redis"`
	Kafka           KafkaConfig           `toml:"kafka"`
	EmployeeService EmployeeServiceConfig `toml:"employee_service"`
	Booking         BookingConfig         `toml:"booking"`
	Logs            LogsConfig            `toml:"logs"`
	Metrics         MetricsConfig         `toml:"metrics"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения к PostgreSQL
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// RedisConfig настройки Redis кеша
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	RoomsTTL int    `toml:"rooms_ttl"` // TTL кеша списка комнат в секундах
	Enabled  bool   `toml:"enabled"`
}

// KafkaConfig настройки Kafka
type KafkaConfig struct {
	Brokers []string `toml:"brokers"`
	Topic   string   `toml:"topic"`
	GroupID string   `toml:"group_id"` // consumer group для cmd/notifier
	Enabled bool     `toml:"enabled"`
}

// EmployeeServiceConfig настройки интеграции с EmployeeService
type EmployeeServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// BookingConfig бизнес-правила бронирования
type BookingConfig struct {
	MinDurationMinutes int    `toml:"min_duration_minutes"`
	MaxDurationMinutes int    `toml:"max_duration_minutes"`
	BusinessHoursStart string `toml:"business_hours_start"` // "08:00"
	BusinessHoursEnd   string `toml:"business_hours_end"`   // "18:00"
}

// Policy конвертирует конфигурацию в domain.BookingPolicy с дефолтами
func (c BookingConfig) Policy() (domain.BookingPolicy, error) {
	policy := domain.DefaultBookingPolicy()

	if c.MinDurationMinutes > 0 {
		policy.MinDurationMinutes = c.MinDurationMinutes
	}
	if c.MaxDurationMinutes > 0 {
		policy.MaxDurationMinutes = c.MaxDurationMinutes
	}
	if c.BusinessHoursStart != "" {
		start, err := types.NewTimeStringFromString(c.BusinessHoursStart)
		if err != nil {
			return policy, fmt.Errorf("config: invalid business_hours_start: %w", err)
		}
		policy.BusinessHoursStart = start
	}
	if c.BusinessHoursEnd != "" {
		end, err := types.NewTimeStringFromString(c.BusinessHoursEnd)
		if err != nil {
			return policy, fmt.Errorf("config: invalid business_hours_end: %w", err)
		}
		policy.BusinessHoursEnd = end
	}

	if policy.MinDurationMinutes > policy.MaxDurationMinutes {
		return policy, fmt.Errorf("config: min_duration_minutes %d exceeds max_duration_minutes %d",
			policy.MinDurationMinutes, policy.MaxDurationMinutes)
	}

	return policy, nil
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// Load загружает конфигурацию из toml файла
// Секреты можно переопределить через переменные окружения (.env поддерживается)
func Load(path string) (*Config, error) {
	// .env опционален - ошибку отсутствия файла игнорируем
	_ = godotenv.Load()

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	// Переопределение секретов из окружения
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port is required")
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("config: database.host and database.dbname are required")
	}
	if _, err := c.Booking.Policy(); err != nil {
		return err
	}
	return nil
}
