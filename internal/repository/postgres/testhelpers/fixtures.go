package testhelpers

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/tile-explorer/internal/domain"
)

// RideFixture builds a ride with sensible defaults for the given id.
func RideFixture(id int64, start time.Time, encodedRoute string) *domain.Ride {
	return &domain.Ride{
		ID:            id,
		Title:         fmt.Sprintf("Ride %d", id),
		Distance:      float64(id) * 1000,
		StartDate:     start.UTC(),
		MaxSpeed:      10 + float64(id),
		AverageSpeed:  5,
		MovingTime:    3600,
		ElapsedTime:   4000,
		ElevationGain: 100,
		Polyline:      encodedRoute,
	}
}

// InsertRides writes fixtures straight into the rides table.
func InsertRides(ctx context.Context, db *sqlx.DB, rides ...*domain.Ride) error {
	for _, ride := range rides {
		_, err := db.NamedExecContext(ctx, `
			INSERT INTO rides (id, title, distance, start_date, max_speed, average_speed,
				moving_time, elapsed_time, elevation_gain, polyline)
			VALUES (:id, :title, :distance, :start_date, :max_speed, :average_speed,
				:moving_time, :elapsed_time, :elevation_gain, :polyline)`, ride)
		if err != nil {
			return fmt.Errorf("insert ride fixture %d: %w", ride.ID, err)
		}
	}
	return nil
}
