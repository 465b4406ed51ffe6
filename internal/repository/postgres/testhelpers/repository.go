package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/tile-explorer/internal/domain/repository"
	"github.com/tile-explorer/internal/repository/postgres"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewRideRepositoryForTest creates a ride repository with test database and logger
func NewRideRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.RideRepository {
	return postgres.NewRideRepository(NewDBForTest(db, logger))
}

// NewStatsRepositoryForTest creates a stats repository with test database and logger
func NewStatsRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.StatsRepository {
	return postgres.NewStatsRepository(NewDBForTest(db, logger), logger)
}
