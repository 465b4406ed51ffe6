package testhelpers

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/tile-explorer/internal/config"
	"github.com/tile-explorer/internal/repository/postgres"
)

const (
	connectAttempts = 3
	connectDelay    = 250 * time.Millisecond
)

// MigrationsDir - путь к миграциям относительно internal/repository/postgres
const MigrationsDir = "../../../migrations"

// TestDB represents a test database connection
type TestDB struct {
	DB     *sqlx.DB
	Logger *zap.Logger
}

// testDatabaseConfig читает TEST_DB_* переменные, по умолчанию - docker
// контейнер на 5433
func testDatabaseConfig() config.DatabaseConfig {
	port, err := strconv.Atoi(getEnv("TEST_DB_PORT", "5433"))
	if err != nil {
		port = 5433
	}
	return config.DatabaseConfig{
		Host:     getEnv("TEST_DB_HOST", "localhost"),
		Port:     port,
		User:     getEnv("TEST_DB_USER", "postgres"),
		Password: getEnv("TEST_DB_PASSWORD", "postgres"),
		DBName:   getEnv("TEST_DB_NAME", "tile_explorer_test"),
		SSLMode:  getEnv("TEST_DB_SSLMODE", "disable"),
	}
}

// SetupTestDB подключается к тестовой базе через lib/pq и применяет
// миграции. Если базы нет, тест пропускается
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	dsn := testDatabaseConfig().DSN() + " connect_timeout=2"

	var (
		db    *sqlx.DB
		err   error
		delay = connectDelay
	)
	for i := 0; i < connectAttempts; i++ {
		db, err = sqlx.Connect("postgres", dsn)
		if err == nil {
			break
		}
		if i < connectAttempts-1 {
			t.Logf("Database not ready (attempt %d/%d), waiting %v...", i+1, connectAttempts, delay)
			time.Sleep(delay)
			delay *= 2
		}
	}
	if err != nil {
		t.Skipf("Postgres not available for integration tests: %v", err)
	}

	tdb := &TestDB{
		DB:     db,
		Logger: zaptest.NewLogger(t),
	}

	if _, err := postgres.ApplyMigrations(context.Background(), db, MigrationsDir); err != nil {
		db.Close()
		t.Fatalf("Failed to apply migrations: %v", err)
	}

	return tdb
}

// Close closes the database connection
func (tdb *TestDB) Close() {
	if tdb.DB != nil {
		tdb.DB.Close()
	}
}

// Cleanup очищает таблицы между тестами
func (tdb *TestDB) Cleanup(ctx context.Context) error {
	for _, table := range []string{"rides"} {
		if _, err := tdb.DB.ExecContext(ctx, fmt.Sprintf("TRUNCATE TABLE %s", table)); err != nil {
			return fmt.Errorf("truncate %s: %w", table, err)
		}
	}
	return nil
}

// getEnv gets environment variable or returns default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
