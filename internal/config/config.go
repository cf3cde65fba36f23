package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-GroomingAgenda/pkg/timeutil"
)

// Filter store drivers
const (
	FilterStoreRedis    = "redis"
	FilterStorePostgres = "postgres"
	FilterStoreMemory   = "memory"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Database DatabaseConfig `toml:"database"`
	Redis    RedisConfig    `toml:"redis"`
	Backend  BackendConfig  `toml:"backend"`
	Auth     AuthConfig     `toml:"auth"`
	Agenda   AgendaConfig   `toml:"agenda"`
	Checkin  CheckinConfig  `toml:"checkin"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type DatabaseConfig struct {
	Enabled         bool   `toml:"enabled"`
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

// DSN собирает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	TTLHours int    `toml:"ttl_hours"`
}

type BackendConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"`
}

type AgendaConfig struct {
	Timezone            string `toml:"timezone"`
	PollIntervalSeconds int    `toml:"poll_interval_seconds"`
	SessionTTLMinutes   int    `toml:"session_ttl_minutes"`
	DefaultOpen         string `toml:"default_open"`
	DefaultClose        string `toml:"default_close"`
	FilterStore         string `toml:"filter_store"`
}

// PollInterval интервал фоновой перезагрузки агенды
func (a AgendaConfig) PollInterval() time.Duration {
	return time.Duration(a.PollIntervalSeconds) * time.Second
}

// SessionTTL время жизни неактивной сессии
func (a AgendaConfig) SessionTTL() time.Duration {
	return time.Duration(a.SessionTTLMinutes) * time.Minute
}

// Location часовой пояс магазинов
func (a AgendaConfig) Location() *time.Location {
	return timeutil.Location(a.Timezone)
}

type CheckinConfig struct {
	QueueSize      int `toml:"queue_size"`
	RetryLimit     int `toml:"retry_limit"`
	RetryDelayMs   int `toml:"retry_delay_ms"`
	PendingTTLMins int `toml:"pending_ttl_minutes"`
}

// RetryDelay базовая задержка между попытками
func (c CheckinConfig) RetryDelay() time.Duration {
	return time.Duration(c.RetryDelayMs) * time.Millisecond
}

// Default returns the configuration used when a key is absent from the file
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs:    LogsConfig{Level: "info"},
		Metrics: MetricsConfig{Path: "/metrics", ServiceName: "grooming-agenda"},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Redis:   RedisConfig{Addr: "localhost:6379", TTLHours: 24 * 30},
		Backend: BackendConfig{Timeout: 10},
		Agenda: AgendaConfig{
			Timezone:            timeutil.DefaultTimezone,
			PollIntervalSeconds: 60,
			SessionTTLMinutes:   30,
			DefaultOpen:         "08:00",
			DefaultClose:        "19:00",
			FilterStore:         FilterStoreMemory,
		},
		Checkin: CheckinConfig{
			QueueSize:      64,
			RetryLimit:     20,
			RetryDelayMs:   30,
			PendingTTLMins: 60,
		},
	}
}

// Load читает .env (если есть), затем TOML файл, затем применяет переменные окружения
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("HTTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.HTTPPort = port
		}
	}
	if v := os.Getenv("BACKEND_URL"); v != "" {
		cfg.Backend.URL = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.Auth.JWTSecret = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("AGENDA_TIMEZONE"); v != "" {
		cfg.Agenda.Timezone = v
	}
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.Backend.URL == "" {
		return fmt.Errorf("%w: backend.url is required", ErrInvalidConfig)
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("%w: auth.jwt_secret is required", ErrInvalidConfig)
	}
	if c.Agenda.PollIntervalSeconds <= 0 {
		return fmt.Errorf("%w: agenda.poll_interval_seconds must be positive", ErrInvalidConfig)
	}
	if c.Agenda.SessionTTLMinutes <= 0 {
		return fmt.Errorf("%w: agenda.session_ttl_minutes must be positive", ErrInvalidConfig)
	}
	if _, err := time.LoadLocation(c.Agenda.Timezone); err != nil {
		return fmt.Errorf("%w: agenda.timezone: %v", ErrInvalidConfig, err)
	}
	if _, err := timeutil.ParseHM(c.Agenda.DefaultOpen); err != nil {
		return fmt.Errorf("%w: agenda.default_open: %v", ErrInvalidConfig, err)
	}
	if _, err := timeutil.ParseHM(c.Agenda.DefaultClose); err != nil {
		return fmt.Errorf("%w: agenda.default_close: %v", ErrInvalidConfig, err)
	}

	switch c.Agenda.FilterStore {
	case FilterStoreRedis, FilterStoreMemory:
	case FilterStorePostgres:
		if !c.Database.Enabled {
			return fmt.Errorf("%w: filter_store=postgres requires database.enabled", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown agenda.filter_store %q", ErrInvalidConfig, c.Agenda.FilterStore)
	}

	if c.Checkin.RetryLimit <= 0 || c.Checkin.QueueSize <= 0 {
		return fmt.Errorf("%w: checkin.retry_limit and checkin.queue_size must be positive", ErrInvalidConfig)
	}
	return nil
}
