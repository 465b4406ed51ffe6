package handler_test

import (
	"context"

	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/mock"

	"github.com/tile-explorer/internal/domain"
	"github.com/tile-explorer/internal/usecase/dto"
)

type MockCoverageService struct {
	mock.Mock
}

func (m *MockCoverageService) GetCoverage(ctx context.Context, window int) (*domain.Coverage, bool, error) {
	args := m.Called(ctx, window)
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}
	return args.Get(0).(*domain.Coverage), args.Bool(1), args.Error(2)
}

func (m *MockCoverageService) GetGeoJSON(ctx context.Context, window int) (*geojson.FeatureCollection, error) {
	args := m.Called(ctx, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*geojson.FeatureCollection), args.Error(1)
}

func (m *MockCoverageService) TilePolygon(x, y int) (*domain.TileFeature, error) {
	args := m.Called(x, y)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TileFeature), args.Error(1)
}

type MockRideService struct {
	mock.Mock
}

func (m *MockRideService) ListRides(ctx context.Context, q dto.RideListQuery) ([]domain.RideSummary, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RideSummary), args.Error(1)
}

func (m *MockRideService) CreateRide(ctx context.Context, req dto.CreateRideRequest) (*domain.RideSummary, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RideSummary), args.Error(1)
}

type MockSyncService struct {
	mock.Mock
}

func (m *MockSyncService) Sync(ctx context.Context, req dto.SyncRequest) (*dto.SyncResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SyncResult), args.Error(1)
}

type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Statistics), args.Error(1)
}

type fakeChecker struct {
	err error
}

func (f fakeChecker) Health(context.Context) error {
	return f.err
}
