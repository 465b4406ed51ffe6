package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Coverage CoverageConfig
	Strava   StravaConfig
	Log      LogConfig
	Worker   WorkerConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string

	CORSOrigins string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	// MigrationsDir - каталог *.up.sql, применяемых при старте API; пусто = не применять
	MigrationsDir string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// CacheConfig - TTL кешей, 0 означает "без истечения"
type CacheConfig struct {
	CoverageCacheTTL time.Duration
	StatsCacheTTL    time.Duration
}

// CoverageConfig параметры расчёта покрытия
type CoverageConfig struct {
	WindowSize     int
	ExtractWorkers int
}

type StravaConfig struct {
	BaseURL        string
	ClientID       string
	ClientSecret   string
	RequestTimeout time.Duration
	PerPage        int
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled           bool
	ConsumerGroup     string
	StreamReadTimeout time.Duration
	MaxRetries        int
	WarmWindows       []int
}

var ErrInvalidWindowSize = errors.New("COVERAGE_WINDOW_SIZE must be a positive even number")

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost:3000,http://localhost:5173")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "tile_explorer")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 300)
	v.SetDefault("DB_CONN_MAX_IDLE_TIME", 60)
	v.SetDefault("DB_MIGRATIONS_DIR", "")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("COVERAGE_CACHE_TTL", 0)
	v.SetDefault("STATS_CACHE_TTL", 3600)

	v.SetDefault("COVERAGE_WINDOW_SIZE", 80)
	v.SetDefault("COVERAGE_EXTRACT_WORKERS", 4)

	v.SetDefault("STRAVA_BASE_URL", "https://www.strava.com")
	v.SetDefault("STRAVA_REQUEST_TIMEOUT", 10)
	v.SetDefault("STRAVA_PER_PAGE", 50)

	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("WORKER_ENABLED", true)
	v.SetDefault("WORKER_CONSUMER_GROUP", "coverage-workers")
	v.SetDefault("WORKER_STREAM_READ_TIMEOUT", 5000)
	v.SetDefault("WORKER_MAX_RETRIES", 3)
}

// Load читает конфигурацию из .env (если есть) и переменных окружения
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !isMissingFile(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("API_HOST"),
			Port: v.GetInt("API_PORT"),
			Env:  v.GetString("API_ENV"),

			CORSOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxConns:        v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(v.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
			MigrationsDir:   v.GetString("DB_MIGRATIONS_DIR"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			CoverageCacheTTL: time.Duration(v.GetInt("COVERAGE_CACHE_TTL")) * time.Second,
			StatsCacheTTL:    time.Duration(v.GetInt("STATS_CACHE_TTL")) * time.Second,
		},
		Coverage: CoverageConfig{
			WindowSize:     v.GetInt("COVERAGE_WINDOW_SIZE"),
			ExtractWorkers: v.GetInt("COVERAGE_EXTRACT_WORKERS"),
		},
		Strava: StravaConfig{
			BaseURL:        v.GetString("STRAVA_BASE_URL"),
			ClientID:       v.GetString("STRAVA_CLIENT_ID"),
			ClientSecret:   v.GetString("STRAVA_CLIENT_SECRET"),
			RequestTimeout: time.Duration(v.GetInt("STRAVA_REQUEST_TIMEOUT")) * time.Second,
			PerPage:        v.GetInt("STRAVA_PER_PAGE"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:           v.GetBool("WORKER_ENABLED"),
			ConsumerGroup:     v.GetString("WORKER_CONSUMER_GROUP"),
			StreamReadTimeout: time.Duration(v.GetInt("WORKER_STREAM_READ_TIMEOUT")) * time.Millisecond,
			MaxRetries:        v.GetInt("WORKER_MAX_RETRIES"),
			WarmWindows:       v.GetIntSlice("WORKER_WARM_WINDOWS"),
		},
	}

	if cfg.Coverage.ExtractWorkers <= 0 {
		cfg.Coverage.ExtractWorkers = 1
	}
	if len(cfg.Worker.WarmWindows) == 0 {
		cfg.Worker.WarmWindows = []int{cfg.Coverage.WindowSize}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет значения, без которых сервис не может стартовать
func (c *Config) Validate() error {
	if c.Coverage.WindowSize <= 0 || c.Coverage.WindowSize%2 != 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidWindowSize, c.Coverage.WindowSize)
	}
	for _, w := range c.Worker.WarmWindows {
		if w <= 0 || w%2 != 0 {
			return fmt.Errorf("%w: warm window %d", ErrInvalidWindowSize, w)
		}
	}
	if c.Server.Port <= 0 {
		return fmt.Errorf("invalid API_PORT: %d", c.Server.Port)
	}
	return nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return c.Database.DSN()
}

// DSN - строка подключения в формате key=value
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host,
		c.Port,
		c.User,
		c.Password,
		c.DBName,
		c.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return c.Redis.Addr()
}

// Addr - host:port для go-redis
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
