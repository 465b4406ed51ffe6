package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/tile-explorer/internal/domain"
	"github.com/tile-explorer/internal/domain/repository"
	apperrors "github.com/tile-explorer/internal/pkg/errors"
	"github.com/tile-explorer/internal/repository/postgres/testhelpers"
)

const testRoute = "_p~iF~ps|U_ulLnnqC_mqNvxq`@"

// RideRepositoryTestSuite тестирует RideRepository на реальной базе
type RideRepositoryTestSuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	repo   repository.RideRepository
	stats  repository.StatsRepository
	ctx    context.Context
	base   time.Time
}

func (s *RideRepositoryTestSuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())

	s.repo = testhelpers.NewRideRepositoryForTest(s.testDB.DB, s.testDB.Logger)
	s.stats = testhelpers.NewStatsRepositoryForTest(s.testDB.DB, s.testDB.Logger)
	s.base = time.Date(2023, 4, 1, 8, 0, 0, 0, time.UTC)
}

func (s *RideRepositoryTestSuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

func (s *RideRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.Require().NoError(s.testDB.Cleanup(s.ctx))
	s.Require().NoError(testhelpers.InsertRides(s.ctx, s.testDB.DB,
		testhelpers.RideFixture(3, s.base.Add(48*time.Hour), testRoute),
		testhelpers.RideFixture(1, s.base, testRoute),
		testhelpers.RideFixture(2, s.base.Add(24*time.Hour), ""),
	))
}

func (s *RideRepositoryTestSuite) TestList_OrderedByStartDate() {
	rides, err := s.repo.List(s.ctx, domain.RideFilter{})
	s.Require().NoError(err)
	s.Require().Len(rides, 3)

	s.Equal(int64(1), rides[0].ID)
	s.Equal(int64(2), rides[1].ID)
	s.Equal(int64(3), rides[2].ID)
	s.Equal(testRoute, rides[0].Polyline)
}

func (s *RideRepositoryTestSuite) TestList_Filter() {
	since := s.base.Add(time.Hour)
	rides, err := s.repo.List(s.ctx, domain.RideFilter{Since: &since, Limit: 1})
	s.Require().NoError(err)
	s.Require().Len(rides, 1)
	s.Equal(int64(2), rides[0].ID)
}

func (s *RideRepositoryTestSuite) TestGetByID() {
	ride, err := s.repo.GetByID(s.ctx, 3)
	s.Require().NoError(err)
	s.Equal("Ride 3", ride.Title)
	s.Equal(3000.0, ride.Distance)

	_, err = s.repo.GetByID(s.ctx, 999)
	s.ErrorIs(err, apperrors.ErrRideNotFound)
}

func (s *RideRepositoryTestSuite) TestSave_Upserts() {
	ride := testhelpers.RideFixture(1, s.base, testRoute)
	ride.Title = "Renamed"
	s.Require().NoError(s.repo.Save(s.ctx, ride))

	got, err := s.repo.GetByID(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal("Renamed", got.Title)

	count, err := s.repo.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(3, count)
}

func (s *RideRepositoryTestSuite) TestSaveBatch() {
	err := s.repo.SaveBatch(s.ctx, []*domain.Ride{
		testhelpers.RideFixture(10, s.base.Add(72*time.Hour), testRoute),
		testhelpers.RideFixture(11, s.base.Add(96*time.Hour), testRoute),
	})
	s.Require().NoError(err)

	count, err := s.repo.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(5, count)

	s.NoError(s.repo.SaveBatch(s.ctx, nil))
}

func (s *RideRepositoryTestSuite) TestExistingIDs() {
	existing, err := s.repo.ExistingIDs(s.ctx, []int64{1, 3, 42})
	s.Require().NoError(err)
	s.Equal(map[int64]bool{1: true, 3: true}, existing)

	existing, err = s.repo.ExistingIDs(s.ctx, nil)
	s.Require().NoError(err)
	s.Empty(existing)
}

func (s *RideRepositoryTestSuite) TestGetStatistics() {
	stats, err := s.stats.GetStatistics(s.ctx)
	s.Require().NoError(err)

	s.NotZero(stats.LastUpdated)
	s.Equal(3, stats.Rides.TotalRides)
	s.Equal(6000.0, stats.Rides.TotalDistance)
	s.Equal(int64(3*3600), stats.Rides.TotalMovingTime)
	s.Equal(3000.0, stats.Rides.LongestRide)
	s.Equal(13.0, stats.Rides.FastestMaxSpeed)
	s.Require().NotNil(stats.Rides.FirstRideAt)
	s.True(stats.Rides.FirstRideAt.Equal(s.base))
}

func (s *RideRepositoryTestSuite) TestGetStatistics_Empty() {
	s.Require().NoError(s.testDB.Cleanup(s.ctx))

	stats, err := s.stats.GetStatistics(s.ctx)
	s.Require().NoError(err)
	s.Zero(stats.Rides.TotalRides)
	s.Nil(stats.Rides.FirstRideAt)
}

func TestRideRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RideRepositoryTestSuite))
}
