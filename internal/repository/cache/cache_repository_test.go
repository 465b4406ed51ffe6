package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tile-explorer/internal/domain"
	"github.com/tile-explorer/internal/repository/cache"
	"github.com/tile-explorer/internal/tiles"
)

// getTestRedis creates a Redis wrapper for testing on DB 2
func getTestRedis(t *testing.T) *cache.Redis {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   2,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available for integration tests: %v", err)
	}
	require.NoError(t, client.FlushDB(ctx).Err())

	t.Cleanup(func() {
		client.FlushDB(context.Background())
		client.Close()
	})
	return cache.NewRedisForTest(client, zap.NewNop())
}

func TestCoverageKey(t *testing.T) {
	assert.Equal(t, "coverage:80", cache.CoverageKey(80))
}

func TestCacheRepository_GetSet(t *testing.T) {
	repo := cache.NewCacheRepository(getTestRedis(t))
	ctx := context.Background()

	val, err := repo.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, val)

	require.NoError(t, repo.Set(ctx, "k", []byte("v"), 0))
	val, err = repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), val)

	require.NoError(t, repo.Set(ctx, "short", []byte("v"), 50*time.Millisecond))
	time.Sleep(100 * time.Millisecond)
	val, err = repo.Get(ctx, "short")
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestCacheRepository_Coverage(t *testing.T) {
	repo := cache.NewCacheRepository(getTestRedis(t))
	ctx := context.Background()

	got, err := repo.GetCoverage(ctx, 80)
	require.NoError(t, err)
	assert.Nil(t, got)

	coverage := &domain.Coverage{
		WindowSize: 80,
		Seed:       tiles.TileCoord{X: 8802, Y: 5373},
		SeedVisits: 4,
		Tiles:      []domain.TileFeature{domain.NewTileFeature(tiles.TileCoord{X: 8802, Y: 5373})},
	}
	require.NoError(t, repo.SetCoverage(ctx, coverage, time.Minute))
	require.NoError(t, repo.SetCoverage(ctx, &domain.Coverage{WindowSize: 40}, 0))
	require.NoError(t, repo.SetStats(ctx, &domain.Statistics{DataVersion: "1.0"}, 0))

	got, err = repo.GetCoverage(ctx, 80)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, coverage.Seed, got.Seed)
	assert.Equal(t, 4, got.SeedVisits)
	assert.Equal(t, "8802-5373", got.Tiles[0].Label)

	require.NoError(t, repo.InvalidateCoverage(ctx))

	for _, w := range []int{40, 80} {
		got, err = repo.GetCoverage(ctx, w)
		require.NoError(t, err)
		assert.Nil(t, got, "window %d", w)
	}
	stats, err := repo.GetStats(ctx)
	require.NoError(t, err)
	assert.Nil(t, stats)
}
