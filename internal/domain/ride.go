package domain

import "time"

// Ride - записанная поездка с закодированным треком
type Ride struct {
	ID            int64     `json:"id" db:"id"`
	Title         string    `json:"title" db:"title"`
	Distance      float64   `json:"dist" db:"distance"`
	StartDate     time.Time `json:"date" db:"start_date"`
	MaxSpeed      float64   `json:"max" db:"max_speed"`
	AverageSpeed  float64   `json:"avg" db:"average_speed"`
	MovingTime    int       `json:"net" db:"moving_time"`
	ElapsedTime   int       `json:"gross" db:"elapsed_time"`
	ElevationGain float64   `json:"elev" db:"elevation_gain"`
	Polyline      string    `json:"polyline" db:"polyline"`
	CreatedAt     time.Time `json:"-" db:"created_at"`
}

// RideSummary is what the map page receives for a ride. The route stays
// encoded; the browser decodes it for drawing.
type RideSummary struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Distance      float64   `json:"dist"`
	StartDate     time.Time `json:"date"`
	MaxSpeed      float64   `json:"max"`
	AverageSpeed  float64   `json:"avg"`
	MovingTime    int       `json:"net"`
	ElapsedTime   int       `json:"gross"`
	ElevationGain float64   `json:"elev"`
	Polyline      string    `json:"polyline"`
}

// Summary returns the display view of the ride.
func (r *Ride) Summary() RideSummary {
	return RideSummary{
		ID:            r.ID,
		Title:         r.Title,
		Distance:      r.Distance,
		StartDate:     r.StartDate,
		MaxSpeed:      r.MaxSpeed,
		AverageSpeed:  r.AverageSpeed,
		MovingTime:    r.MovingTime,
		ElapsedTime:   r.ElapsedTime,
		ElevationGain: r.ElevationGain,
		Polyline:      r.Polyline,
	}
}

// RideFilter ограничивает выборку поездок
type RideFilter struct {
	Since *time.Time
	Until *time.Time
	Limit int
}
