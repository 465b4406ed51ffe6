package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tile-explorer/internal/domain"
	apperrors "github.com/tile-explorer/internal/pkg/errors"
	"github.com/tile-explorer/internal/tiles"
	"github.com/tile-explorer/internal/usecase"
)

const (
	blockX = 8800
	blockY = 5370
)

func newCoverageUseCase(rides *MockRideRepository, cache *MockCacheRepository) *usecase.CoverageUseCase {
	return usecase.NewCoverageUseCase(rides, cache, zap.NewNop(), usecase.CoverageOptions{
		DefaultWindow: 80,
		Workers:       3,
		CacheTTL:      time.Minute,
	})
}

func squareRides() []*domain.Ride {
	return []*domain.Ride{
		{ID: 1, Title: "Square", Polyline: serpentine(blockX, blockY, 5)},
		{ID: 2, Title: "Broken", Polyline: "_p~iF~ps|U_"},
		{ID: 3, Title: "Empty", Polyline: ""},
	}
}

func TestCoverageUseCase_GetCoverage_CacheHit(t *testing.T) {
	ctx := context.Background()
	rides := &MockRideRepository{}
	cache := &MockCacheRepository{}
	cached := &domain.Coverage{WindowSize: 80}

	cache.On("GetCoverage", ctx, 80).Return(cached, nil)

	uc := newCoverageUseCase(rides, cache)
	got, fromCache, err := uc.GetCoverage(ctx, 0)

	require.NoError(t, err)
	assert.True(t, fromCache)
	assert.Same(t, cached, got)
	rides.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestCoverageUseCase_GetCoverage_ComputesOnMiss(t *testing.T) {
	ctx := context.Background()
	rides := &MockRideRepository{}
	cache := &MockCacheRepository{}

	cache.On("GetCoverage", ctx, 80).Return(nil, nil)
	rides.On("List", ctx, domain.RideFilter{}).Return(squareRides(), nil)
	cache.On("SetCoverage", ctx, mock.AnythingOfType("*domain.Coverage"), time.Minute).Return(nil)

	uc := newCoverageUseCase(rides, cache)
	coverage, fromCache, err := uc.GetCoverage(ctx, 80)

	require.NoError(t, err)
	assert.False(t, fromCache)

	assert.Len(t, coverage.Rides, 3)
	assert.Len(t, coverage.Tiles, 25)
	assert.Equal(t, []int64{2}, coverage.SkippedRide)
	assert.Equal(t, tiles.TileCoord{X: blockX, Y: blockY}, coverage.Seed)
	assert.Equal(t, 1, coverage.SeedVisits)
	assert.Equal(t, 5, coverage.MaxBlock.Side)
	assert.Equal(t, tiles.TileCoord{X: blockX, Y: blockY}, coverage.MaxBlock.TopLeft)
	assert.Equal(t, tiles.BlockPolygon(tiles.TileCoord{X: blockX, Y: blockY}, 5), coverage.MaxBlock.Square)
	assert.Len(t, coverage.Cluster, 9)
	assert.Equal(t, "8801-5371", coverage.Cluster[0].Label)
	assert.Equal(t, 80, coverage.WindowSize)
	assert.False(t, coverage.GeneratedAt.IsZero())

	cache.AssertExpectations(t)
	rides.AssertExpectations(t)
}

func TestCoverageUseCase_GetCoverage_CacheErrorsAreNotFatal(t *testing.T) {
	ctx := context.Background()
	rides := &MockRideRepository{}
	cache := &MockCacheRepository{}

	cache.On("GetCoverage", ctx, 40).Return(nil, errors.New("redis down"))
	rides.On("List", ctx, domain.RideFilter{}).Return(squareRides()[:1], nil)
	cache.On("SetCoverage", ctx, mock.Anything, time.Minute).Return(errors.New("redis down"))

	coverage, _, err := newCoverageUseCase(rides, cache).GetCoverage(ctx, 40)
	require.NoError(t, err)
	assert.Equal(t, 40, coverage.WindowSize)
	assert.Len(t, coverage.Tiles, 25)
}

func TestCoverageUseCase_InvalidWindow(t *testing.T) {
	uc := newCoverageUseCase(&MockRideRepository{}, &MockCacheRepository{})

	for _, w := range []int{-2, 7, 1} {
		_, _, err := uc.GetCoverage(context.Background(), w)
		assert.ErrorIs(t, err, apperrors.ErrInvalidWindowSize, "window %d", w)
	}
}

func TestCoverageUseCase_NoRides(t *testing.T) {
	ctx := context.Background()
	rides := &MockRideRepository{}
	cache := &MockCacheRepository{}

	cache.On("GetCoverage", ctx, 80).Return(nil, nil)
	rides.On("List", ctx, domain.RideFilter{}).Return([]*domain.Ride{}, nil)

	_, _, err := newCoverageUseCase(rides, cache).GetCoverage(ctx, 80)
	assert.ErrorIs(t, err, apperrors.ErrNoRides)
	cache.AssertNotCalled(t, "SetCoverage", mock.Anything, mock.Anything, mock.Anything)
}

func TestCoverageUseCase_OnlyUndecodableRides(t *testing.T) {
	ctx := context.Background()
	rides := &MockRideRepository{}

	rides.On("List", ctx, domain.RideFilter{}).Return([]*domain.Ride{{ID: 9, Polyline: "_"}}, nil)

	_, err := newCoverageUseCase(rides, &MockCacheRepository{}).Compute(ctx, 80)
	assert.ErrorIs(t, err, apperrors.ErrNoRides)
}

func TestCoverageUseCase_DatabaseError(t *testing.T) {
	ctx := context.Background()
	rides := &MockRideRepository{}
	dbErr := errors.New("connection refused")

	rides.On("List", ctx, domain.RideFilter{}).Return(nil, dbErr)

	_, err := newCoverageUseCase(rides, &MockCacheRepository{}).Compute(ctx, 80)
	assert.ErrorIs(t, err, apperrors.ErrDatabaseError)
	assert.ErrorIs(t, err, dbErr)
}

func TestCoverageUseCase_Warm(t *testing.T) {
	ctx := context.Background()
	rides := &MockRideRepository{}
	cache := &MockCacheRepository{}

	rides.On("List", ctx, domain.RideFilter{}).Return(squareRides()[:1], nil)
	cache.On("SetCoverage", ctx, mock.MatchedBy(func(c *domain.Coverage) bool {
		return c.WindowSize == 20 || c.WindowSize == 80
	}), time.Minute).Return(nil).Twice()

	require.NoError(t, newCoverageUseCase(rides, cache).Warm(ctx, []int{20, 80}))
	cache.AssertExpectations(t)
}

func TestCoverageUseCase_Warm_NoRides(t *testing.T) {
	ctx := context.Background()
	rides := &MockRideRepository{}

	rides.On("List", ctx, domain.RideFilter{}).Return([]*domain.Ride{}, nil)

	assert.NoError(t, newCoverageUseCase(rides, &MockCacheRepository{}).Warm(ctx, []int{80}))
}

func TestCoverageUseCase_Invalidate(t *testing.T) {
	ctx := context.Background()
	cache := &MockCacheRepository{}
	cache.On("InvalidateCoverage", ctx).Return(nil).Once()
	cache.On("InvalidateCoverage", ctx).Return(errors.New("boom")).Once()

	uc := newCoverageUseCase(&MockRideRepository{}, cache)
	assert.NoError(t, uc.Invalidate(ctx))
	assert.ErrorIs(t, uc.Invalidate(ctx), apperrors.ErrCacheError)
}

func TestCoverageUseCase_TilePolygon(t *testing.T) {
	uc := newCoverageUseCase(&MockRideRepository{}, &MockCacheRepository{})

	f, err := uc.TilePolygon(8802, 5373)
	require.NoError(t, err)
	assert.Equal(t, "8802-5373", f.Label)
	assert.Equal(t, tiles.TilePolygon(tiles.TileCoord{X: 8802, Y: 5373}), f.Coordinates)

	_, err = uc.TilePolygon(tiles.GridSize, 0)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTileCoordinates)
}

func TestCoverageToGeoJSON(t *testing.T) {
	ctx := context.Background()
	rides := &MockRideRepository{}
	rides.On("List", ctx, domain.RideFilter{}).Return(squareRides()[:1], nil)

	coverage, err := newCoverageUseCase(rides, &MockCacheRepository{}).Compute(ctx, 80)
	require.NoError(t, err)

	fc := usecase.CoverageToGeoJSON(coverage)
	require.Len(t, fc.Features, 25+9+1)

	first := fc.Features[0]
	assert.Equal(t, usecase.FeatureKindTile, first.Properties["kind"])
	assert.Equal(t, "8800-5370", first.Properties["label"])

	last := fc.Features[len(fc.Features)-1]
	assert.Equal(t, usecase.FeatureKindMaxBlock, last.Properties["kind"])
	assert.Equal(t, 5, last.Properties["side"])

	bound := first.Geometry.Bound()
	b := tiles.TileCoord{X: blockX, Y: blockY}.Bounds()
	assert.InDelta(t, b.Left, bound.Min[0], 1e-9)
	assert.InDelta(t, b.Bottom, bound.Min[1], 1e-9)
	assert.InDelta(t, b.Right, bound.Max[0], 1e-9)
	assert.InDelta(t, b.Top, bound.Max[1], 1e-9)
}
