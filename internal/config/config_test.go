package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestViper(overrides map[string]interface{}) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	for k, val := range overrides {
		v.Set(k, val)
	}
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(newTestViper(nil))
	require.NoError(t, err)

	assert.Equal(t, 80, cfg.Coverage.WindowSize)
	assert.Equal(t, 4, cfg.Coverage.ExtractWorkers)
	assert.Zero(t, cfg.Cache.CoverageCacheTTL)
	assert.Equal(t, "https://www.strava.com", cfg.Strava.BaseURL)
	assert.Equal(t, 50, cfg.Strava.PerPage)
	assert.Equal(t, "coverage-workers", cfg.Worker.ConsumerGroup)
	assert.Equal(t, []int{80}, cfg.Worker.WarmWindows)
	assert.Equal(t, "0.0.0.0:8080", cfg.GetServerAddr())
	assert.Equal(t, "localhost:6379", cfg.GetRedisAddr())
	assert.Equal(t, "http://localhost:3000,http://localhost:5173", cfg.Server.CORSOrigins)
	assert.Empty(t, cfg.Database.MigrationsDir)
}

func TestFromViper_Overrides(t *testing.T) {
	cfg, err := fromViper(newTestViper(map[string]interface{}{
		"COVERAGE_WINDOW_SIZE":     40,
		"COVERAGE_EXTRACT_WORKERS": 0,
		"COVERAGE_CACHE_TTL":       120,
		"WORKER_WARM_WINDOWS":      []int{20, 40},
	}))
	require.NoError(t, err)

	assert.Equal(t, 40, cfg.Coverage.WindowSize)
	assert.Equal(t, 1, cfg.Coverage.ExtractWorkers)
	assert.Equal(t, float64(120), cfg.Cache.CoverageCacheTTL.Seconds())
	assert.Equal(t, []int{20, 40}, cfg.Worker.WarmWindows)
}

func TestFromViper_InvalidWindow(t *testing.T) {
	for _, window := range []int{0, -2, 7} {
		_, err := fromViper(newTestViper(map[string]interface{}{"COVERAGE_WINDOW_SIZE": window}))
		assert.ErrorIs(t, err, ErrInvalidWindowSize, "window %d", window)
	}

	_, err := fromViper(newTestViper(map[string]interface{}{"WORKER_WARM_WINDOWS": []int{80, 3}}))
	assert.ErrorIs(t, err, ErrInvalidWindowSize)
}

func TestGetDatabaseDSN(t *testing.T) {
	cfg, err := fromViper(newTestViper(map[string]interface{}{"DB_PASSWORD": "secret"}))
	require.NoError(t, err)

	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=secret dbname=tile_explorer sslmode=disable",
		cfg.GetDatabaseDSN())
}
